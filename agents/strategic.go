package agents

import (
	"context"
	"fmt"

	"github.com/auctionlab/bidsim/core"
	"github.com/auctionlab/bidsim/llm"
)

// StrategicBidder consults the best-response estimator each round and
// optionally lets the collaborator refine the recommendation. The estimator
// bid is the guaranteed fallback, so the bidder stays functional with no
// collaborator at all.
type StrategicBidder struct {
	id         string
	gridPoints int
	gen        llm.TextGenerator
}

// NewStrategicBidder creates a strategic bidder using the default
// best-response grid. A nil generator bids the estimator recommendation
// directly.
func NewStrategicBidder(id string, gen llm.TextGenerator) *StrategicBidder {
	return &StrategicBidder{id: id, gridPoints: core.DefaultGridPoints, gen: gen}
}

func (s *StrategicBidder) ID() string   { return s.id }
func (s *StrategicBidder) Type() string { return TypeStrategic }

// GetBid estimates the best response for the private value and refines it
// through the collaborator when one is configured.
func (s *StrategicBidder) GetBid(ctx context.Context, req core.BidRequest) (core.BidResponse, error) {
	rec, err := core.EstimateBestResponse(req.PrivateValue, s.gridPoints)
	if err != nil {
		return core.BidResponse{}, fmt.Errorf("bidder %s: best response: %w", s.id, err)
	}

	if s.gen == nil {
		return core.BidResponse{
			AuctionID:  req.AuctionID,
			RoundIndex: req.RoundIndex,
			BidderID:   s.id,
			Bid:        rec.BestBid,
			Reasoning:  "Used best-response estimator directly (no collaborator).",
		}, nil
	}

	raw, err := s.gen.Generate(ctx, buildStrategicPrompt(req, rec))
	if err != nil {
		return core.BidResponse{
			AuctionID:  req.AuctionID,
			RoundIndex: req.RoundIndex,
			BidderID:   s.id,
			Bid:        rec.BestBid,
			Reasoning:  fmt.Sprintf("Collaborator unavailable (%v); used best-response recommendation.", err),
		}, nil
	}

	parsed, err := llm.ParseBid(raw)
	if err != nil {
		return core.BidResponse{}, fmt.Errorf("bidder %s: parsing collaborator reply: %w", s.id, err)
	}

	return core.BidResponse{
		AuctionID:  req.AuctionID,
		RoundIndex: req.RoundIndex,
		BidderID:   s.id,
		Bid:        parsed.Bid,
		Reasoning:  parsed.Reasoning,
		RawText:    raw,
	}, nil
}
