package agents

import (
	"context"
	"fmt"
	"math"

	"github.com/auctionlab/bidsim/core"
	"github.com/auctionlab/bidsim/logger"
)

// Auctioneer coordinates rounds: it samples private values, requests sealed
// bids, resolves the auction, and records history. It owns the only mutable
// History; bidders see copies that stop at the previous round.
type Auctioneer struct {
	config    core.AuctionConfig
	auctionID string
	sampler   *core.ValueSampler
	round     int
	history   []core.BidRecord
}

// NewAuctioneer creates the round coordinator for one simulation run.
func NewAuctioneer(cfg core.AuctionConfig, auctionID string) *Auctioneer {
	return &Auctioneer{
		config:    cfg,
		auctionID: auctionID,
		sampler:   core.SamplerForConfig(cfg),
	}
}

// AuctionID returns the run identifier.
func (a *Auctioneer) AuctionID() string { return a.auctionID }

// Round returns the index the next round will run under. Indices increase
// monotonically and are never reused.
func (a *Auctioneer) Round() int { return a.round }

// HistorySnapshot returns a copy of the completed-round history. The round
// in progress is never present, so no bidder can observe current-round
// values or bids.
func (a *Auctioneer) HistorySnapshot() []core.BidRecord {
	snapshot := make([]core.BidRecord, len(a.history))
	copy(snapshot, a.history)
	return snapshot
}

// BidHistory returns a copy of the full recorded history for export.
func (a *Auctioneer) BidHistory() []core.BidRecord {
	return a.HistorySnapshot()
}

// RunRound executes one sealed-bid round: SAMPLE, REQUEST_BIDS, RESOLVE,
// RECORD. A bidder without a bidding capability or a non-finite bid aborts
// the round, since payoff computation requires a complete bid set.
func (a *Auctioneer) RunRound(ctx context.Context, bidders []Bidder) (core.AuctionOutcome, map[string]core.BidResponse, error) {
	round := a.round
	snapshot := a.HistorySnapshot()

	bids := make(map[string]float64, len(bidders))
	values := make(map[string]float64, len(bidders))
	responses := make(map[string]core.BidResponse, len(bidders))
	recordStart := len(a.history)

	for i, bidder := range bidders {
		if bidder == nil {
			return core.AuctionOutcome{}, nil, fmt.Errorf("round %d: bidder at position %d has no bidding capability", round, i)
		}

		value := a.sampler.Sample()
		values[bidder.ID()] = value

		// Each bidder gets its own copy of the pre-round snapshot, so one
		// bidder cannot alter the records a later bidder reads.
		req := core.BidRequest{
			AuctionID:    a.auctionID,
			RoundIndex:   round,
			Config:       a.config,
			BidderID:     bidder.ID(),
			PrivateValue: value,
			History:      append([]core.BidRecord(nil), snapshot...),
		}

		resp, err := bidder.GetBid(ctx, req)
		if err != nil {
			return core.AuctionOutcome{}, nil, fmt.Errorf("round %d: requesting bid from %s: %w", round, bidder.ID(), err)
		}
		if math.IsNaN(resp.Bid) || math.IsInf(resp.Bid, 0) {
			return core.AuctionOutcome{}, nil, fmt.Errorf("round %d: bidder %s returned non-finite bid", round, bidder.ID())
		}

		responses[bidder.ID()] = resp
		bids[bidder.ID()] = resp.Bid

		a.history = append(a.history, core.BidRecord{
			Round:       round,
			AgentID:     bidder.ID(),
			AgentType:   bidder.Type(),
			Bid:         resp.Bid,
			SecretValue: value,
		})
	}

	outcome, err := core.ComputePayoffsWithReserve(bids, values, a.auctionID, round, a.config.ReservePrice)
	if err != nil {
		return core.AuctionOutcome{}, nil, fmt.Errorf("round %d: computing payoffs: %w", round, err)
	}

	// Backfill the winner into this round's records now that it is known.
	for i := recordStart; i < len(a.history); i++ {
		a.history[i].WinnerID = outcome.WinnerID
	}

	a.round++

	logger.GetLogger().WithFields(logger.Fields{
		"auction_id":     a.auctionID,
		"round":          round,
		"winner":         outcome.WinnerID,
		"clearing_price": outcome.ClearingPrice,
	}).Debug("round resolved")

	return outcome, responses, nil
}
