// Package config loads simulator configuration from a yaml file, BIDSIM_*
// environment variables and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/auctionlab/bidsim/core"
)

// Bidder strategy kinds accepted in configuration.
const (
	StrategyHeuristic = "heuristic"
	StrategyAdaptive  = "adaptive"
	StrategyStrategic = "strategic"
)

type Config struct {
	Auction    AuctionSection    `koanf:"auction"`
	Simulation SimulationSection `koanf:"simulation"`
	LLM        LLMSection        `koanf:"llm"`
	Bidders    []BidderSection   `koanf:"bidders"`
	Logging    LoggingSection    `koanf:"logging"`
}

type AuctionSection struct {
	MinValue          float64 `koanf:"min_value"`
	MaxValue          float64 `koanf:"max_value"`
	ReservePrice      float64 `koanf:"reserve_price"`
	Mechanism         string  `koanf:"mechanism"`
	ValueDistribution string  `koanf:"value_distribution"`
	RandomSeed        *int64  `koanf:"random_seed"`
}

type SimulationSection struct {
	NumRounds    int    `koanf:"num_rounds"`
	RoundLogPath string `koanf:"round_log_path"`
	ExportDir    string `koanf:"export_dir"`
}

type LLMSection struct {
	APIKey  string `koanf:"api_key"`
	BaseURL string `koanf:"base_url"`
	Model   string `koanf:"model"`
}

type BidderSection struct {
	ID            string  `koanf:"id"`
	Strategy      string  `koanf:"strategy"`
	ShadingFactor float64 `koanf:"shading_factor"`
	UseLLM        bool    `koanf:"use_llm"`
}

type LoggingSection struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

// Defaults returns the built-in experiment profile: two heuristic bidders
// around one LLM-refined strategic bidder, 20 rounds.
func Defaults() Config {
	return Config{
		Auction: AuctionSection{
			MinValue:          0.0,
			MaxValue:          1.0,
			ReservePrice:      0.0,
			Mechanism:         core.MechanismSecondPrice,
			ValueDistribution: core.DistributionUniform,
		},
		Simulation: SimulationSection{
			NumRounds:    20,
			RoundLogPath: "rounds.log",
			ExportDir:    "out",
		},
		LLM: LLMSection{
			Model: "gpt-4o-mini",
		},
		Bidders: []BidderSection{
			{ID: "B1", Strategy: StrategyHeuristic, ShadingFactor: 0.8},
			{ID: "B2", Strategy: StrategyStrategic, UseLLM: true},
			{ID: "B3", Strategy: StrategyHeuristic, ShadingFactor: 0.7},
		},
		Logging: LoggingSection{Level: "info"},
	}
}

// Load reads the yaml file at path (skipped when empty), merges BIDSIM_*
// environment variables on top, and returns the final Config. A .env file in
// the working directory is loaded first, silently ignored if missing. The
// returned Config has NOT been validated; callers should invoke Validate.
func Load(path string) (*Config, error) {
	// Load .env before reading the environment (ignore if missing).
	_ = godotenv.Load()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// BIDSIM_LLM_API_KEY -> llm.api_key: only the first underscore
	// separates section from key, the sections are all single words.
	if err := k.Load(env.Provider("BIDSIM_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "BIDSIM_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := Defaults()
	// A user-supplied lineup replaces the default lineup wholesale. Decoding
	// into the pre-filled slice would merge bidders element-by-index, so a
	// configured bidder could inherit fields from the default at its position.
	if k.Exists("bidders") {
		cfg.Bidders = nil
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Adaptive bidders consult the collaborator by default; -no-llm clears
	// this flag, leaving the shading factor fixed.
	for i := range cfg.Bidders {
		if cfg.Bidders[i].Strategy == StrategyAdaptive {
			cfg.Bidders[i].UseLLM = true
		}
	}

	// Conventional fallback for the collaborator credential.
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return &cfg, nil
}

// AuctionConfig assembles the core configuration for this run. The bidder
// count always comes from the configured lineup.
func (c *Config) AuctionConfig() core.AuctionConfig {
	return core.AuctionConfig{
		NumBidders:        len(c.Bidders),
		MinValue:          c.Auction.MinValue,
		MaxValue:          c.Auction.MaxValue,
		ReservePrice:      c.Auction.ReservePrice,
		Mechanism:         c.Auction.Mechanism,
		ValueDistribution: c.Auction.ValueDistribution,
		RandomSeed:        c.Auction.RandomSeed,
	}
}

// UsesLLM reports whether any configured bidder calls the collaborator.
// Load marks adaptive bidders as collaborator users, so UseLLM is the
// single switch.
func (c *Config) UsesLLM() bool {
	for _, b := range c.Bidders {
		if b.UseLLM {
			return true
		}
	}
	return false
}

// Validate checks the configuration. A missing collaborator credential while
// any bidder needs one is a fatal configuration error, surfaced here at
// startup rather than mid-simulation.
func (c *Config) Validate() error {
	if err := c.AuctionConfig().Validate(); err != nil {
		return err
	}
	if c.Simulation.NumRounds < 0 {
		return fmt.Errorf("simulation.num_rounds must be non-negative, got %d", c.Simulation.NumRounds)
	}
	if len(c.Bidders) == 0 {
		return fmt.Errorf("at least one bidder must be configured")
	}

	seen := make(map[string]bool, len(c.Bidders))
	for _, b := range c.Bidders {
		if b.ID == "" {
			return fmt.Errorf("bidder with empty id")
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate bidder id %q", b.ID)
		}
		seen[b.ID] = true

		switch b.Strategy {
		case StrategyHeuristic, StrategyAdaptive:
			if b.ShadingFactor <= 0 || b.ShadingFactor > 1 {
				return fmt.Errorf("bidder %s: shading_factor must be in (0, 1], got %v", b.ID, b.ShadingFactor)
			}
		case StrategyStrategic:
		default:
			return fmt.Errorf("bidder %s: unknown strategy %q", b.ID, b.Strategy)
		}
	}

	if c.UsesLLM() && c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key (or OPENAI_API_KEY) is required when a bidder uses the collaborator")
	}
	return nil
}
