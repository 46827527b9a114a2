// Package sim runs the repeated-auction simulation loop and aggregates
// outcomes into a summary.
package sim

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/auctionlab/bidsim/agents"
	"github.com/auctionlab/bidsim/core"
	"github.com/auctionlab/bidsim/logger"
)

// Simulation drives an auctioneer and a set of bidders for a fixed number of
// rounds. Rounds execute strictly sequentially: bidders in later rounds read
// history produced by earlier ones.
type Simulation struct {
	config     core.AuctionConfig
	numRounds  int
	auctioneer *agents.Auctioneer
	bidders    []agents.Bidder
	roundLog   *RoundLog
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithRoundLog attaches a round log written as the simulation progresses.
func WithRoundLog(rl *RoundLog) Option {
	return func(s *Simulation) {
		s.roundLog = rl
	}
}

// WithAuctionID overrides the generated auction run ID.
func WithAuctionID(id string) Option {
	return func(s *Simulation) {
		s.auctioneer = agents.NewAuctioneer(s.config, id)
	}
}

// New creates a simulation over the given bidders. The config must already
// be validated.
func New(cfg core.AuctionConfig, bidders []agents.Bidder, numRounds int, opts ...Option) *Simulation {
	s := &Simulation{
		config:     cfg,
		numRounds:  numRounds,
		auctioneer: agents.NewAuctioneer(cfg, uuid.NewString()),
		bidders:    bidders,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BidHistory returns the full recorded bid history, for export.
func (s *Simulation) BidHistory() []core.BidRecord {
	return s.auctioneer.BidHistory()
}

// Run executes the configured number of rounds and returns the aggregate
// summary. Zero rounds yields a zeroed summary without error.
func (s *Simulation) Run(ctx context.Context) (core.SimulationSummary, error) {
	log := logger.GetLogger().WithFields(logger.Fields{
		"auction_id": s.auctioneer.AuctionID(),
		"num_rounds": s.numRounds,
	})
	log.Info("simulation started")

	totalUtility := make(map[string]float64, len(s.bidders))
	winCounts := make(map[string]int, len(s.bidders))
	for _, b := range s.bidders {
		totalUtility[b.ID()] = 0.0
		winCounts[b.ID()] = 0
	}

	totalRevenue := 0.0
	revenueSeries := make([]float64, 0, s.numRounds)

	for i := 0; i < s.numRounds; i++ {
		if err := ctx.Err(); err != nil {
			return core.SimulationSummary{}, fmt.Errorf("round %d: %w", i, err)
		}

		outcome, responses, err := s.auctioneer.RunRound(ctx, s.bidders)
		if err != nil {
			return core.SimulationSummary{}, err
		}

		totalRevenue += outcome.Revenue
		revenueSeries = append(revenueSeries, outcome.Revenue)
		for bidderID, payoff := range outcome.Payoffs {
			totalUtility[bidderID] += payoff
		}
		if outcome.WinnerID != "" {
			winCounts[outcome.WinnerID]++
		}

		if s.roundLog != nil {
			if err := s.roundLog.WriteRound(outcome, responses); err != nil {
				return core.SimulationSummary{}, fmt.Errorf("round %d: writing round log: %w", i, err)
			}
		}
	}

	summary := s.summarize(totalRevenue, totalUtility, winCounts, revenueSeries)

	log.WithFields(logger.Fields{"mean_revenue": summary.MeanRevenue}).Info("simulation finished")
	return summary, nil
}

func (s *Simulation) summarize(totalRevenue float64, totalUtility map[string]float64, winCounts map[string]int, revenueSeries []float64) core.SimulationSummary {
	meanUtility := make(map[string]float64, len(totalUtility))
	winFractions := make(map[string]float64, len(winCounts))

	if s.numRounds > 0 {
		rounds := float64(s.numRounds)
		for bidderID, total := range totalUtility {
			meanUtility[bidderID] = total / rounds
		}
		// Win fractions divide by the round count, not the win total, so
		// they sum below 1.0 when some rounds had no sale.
		for bidderID, wins := range winCounts {
			winFractions[bidderID] = float64(wins) / rounds
		}
		return core.SimulationSummary{
			Config:                s.config,
			NumRounds:             s.numRounds,
			MeanRevenue:           totalRevenue / rounds,
			MeanUtilityPerBidder:  meanUtility,
			DistributionOfWinners: winFractions,
			RevenueSeries:         revenueSeries,
		}
	}

	for bidderID := range totalUtility {
		meanUtility[bidderID] = 0.0
		winFractions[bidderID] = 0.0
	}
	return core.SimulationSummary{
		Config:                s.config,
		NumRounds:             0,
		MeanRevenue:           0.0,
		MeanUtilityPerBidder:  meanUtility,
		DistributionOfWinners: winFractions,
	}
}
