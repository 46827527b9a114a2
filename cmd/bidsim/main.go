package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/auctionlab/bidsim/agents"
	"github.com/auctionlab/bidsim/config"
	"github.com/auctionlab/bidsim/llm"
	"github.com/auctionlab/bidsim/logger"
	"github.com/auctionlab/bidsim/sim"
	"github.com/auctionlab/bidsim/viz"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to yaml config file (optional)")
		rounds     = flag.Int("rounds", -1, "Override simulation.num_rounds (-1 keeps config value)")
		noLLM      = flag.Bool("no-llm", false, "Disable the text-generation collaborator for all bidders")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *rounds >= 0 {
		cfg.Simulation.NumRounds = *rounds
	}
	if *noLLM {
		for i := range cfg.Bidders {
			cfg.Bidders[i].UseLLM = false
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger.SetLevel(cfg.Logging.Level)
	if cfg.Logging.File != "" {
		logger.EnableFileOutput(cfg.Logging.File)
	}
	log := logger.GetLogger()

	var generator llm.TextGenerator
	if cfg.UsesLLM() {
		opts := []llm.ClientOption{llm.WithModel(cfg.LLM.Model)}
		if cfg.LLM.BaseURL != "" {
			opts = append(opts, llm.WithBaseURL(cfg.LLM.BaseURL))
		}
		generator = llm.NewClient(cfg.LLM.APIKey, opts...)
	}

	bidders, err := buildBidders(cfg, generator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building bidders: %v\n", err)
		os.Exit(1)
	}

	roundLog := sim.NewRoundLog(cfg.Simulation.RoundLogPath)
	defer roundLog.Close()

	simulation := sim.New(cfg.AuctionConfig(), bidders, cfg.Simulation.NumRounds, sim.WithRoundLog(roundLog))

	fmt.Printf("\nRunning %d auction rounds with %d bidders...\n\n", cfg.Simulation.NumRounds, len(bidders))

	summary, err := simulation.Run(context.Background())
	if err != nil {
		log.WithError(err).Error("simulation failed")
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		os.Exit(2)
	}

	if err := roundLog.WriteSummary(summary); err != nil {
		log.WithError(err).Warn("failed to write round log summary")
	}

	if cfg.Simulation.ExportDir != "" {
		if err := viz.Export(cfg.Simulation.ExportDir, simulation.BidHistory(), summary); err != nil {
			log.WithError(err).Warn("failed to export plot artifacts")
		}
	}

	printSummary(summary.MeanRevenue, summary.MeanUtilityPerBidder, summary.DistributionOfWinners)
}

func buildBidders(cfg *config.Config, generator llm.TextGenerator) ([]agents.Bidder, error) {
	registry := agents.NewRegistry()

	for _, b := range cfg.Bidders {
		gen := generator
		if !b.UseLLM {
			gen = nil
		}

		switch b.Strategy {
		case config.StrategyHeuristic:
			registry.Register(agents.NewHeuristicBidder(b.ID, b.ShadingFactor, gen))
		case config.StrategyAdaptive:
			registry.Register(agents.NewAdaptiveBidder(b.ID, b.ShadingFactor, gen))
		case config.StrategyStrategic:
			registry.Register(agents.NewStrategicBidder(b.ID, gen))
		default:
			return nil, fmt.Errorf("bidder %s: unknown strategy %q", b.ID, b.Strategy)
		}
	}

	return registry.List(), nil
}

func printSummary(meanRevenue float64, meanUtility, winners map[string]float64) {
	fmt.Println("=== Auction Simulation Summary ===")
	fmt.Println()
	fmt.Printf("Mean Clearing Price (Revenue): %.4f\n\n", meanRevenue)

	fmt.Println("Mean Utility per Bidder:")
	for _, bidderID := range sortedIDs(meanUtility) {
		fmt.Printf("  %s: %.4f\n", bidderID, meanUtility[bidderID])
	}
	fmt.Println()

	fmt.Println("Winner Distribution:")
	for _, bidderID := range sortedIDs(winners) {
		fmt.Printf("  %s: %.1f%%\n", bidderID, winners[bidderID]*100)
	}
	fmt.Println()
}

func sortedIDs(m map[string]float64) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
