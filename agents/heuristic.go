package agents

import (
	"context"
	"fmt"

	"github.com/auctionlab/bidsim/core"
	"github.com/auctionlab/bidsim/llm"
)

// Shading factor bounds for heuristic bidders. Collaborator suggestions
// outside this range are clamped, never rejected.
const (
	ShadingMin = 0.7
	ShadingMax = 0.95
)

// HeuristicBidder bids a fixed fraction of its private value. When adaptive,
// it asks the collaborator to retune the shading factor from the round
// history before bidding; the factor is the bidder's only mutable state and
// always stays within [ShadingMin, ShadingMax] after adjustment.
type HeuristicBidder struct {
	id       string
	shading  float64
	adaptive bool
	gen      llm.TextGenerator
}

// NewHeuristicBidder creates a fixed-shading bidder. A nil generator keeps
// the bidder purely numeric.
func NewHeuristicBidder(id string, shadingFactor float64, gen llm.TextGenerator) *HeuristicBidder {
	return &HeuristicBidder{id: id, shading: shadingFactor, gen: gen}
}

// NewAdaptiveBidder creates a history-adaptive shading bidder.
func NewAdaptiveBidder(id string, shadingFactor float64, gen llm.TextGenerator) *HeuristicBidder {
	return &HeuristicBidder{id: id, shading: shadingFactor, adaptive: true, gen: gen}
}

func (b *HeuristicBidder) ID() string   { return b.id }
func (b *HeuristicBidder) Type() string { return TypeHeuristic }

// ShadingFactor returns the current shading factor.
func (b *HeuristicBidder) ShadingFactor() float64 { return b.shading }

// GetBid computes the shaded bid, optionally refined by the collaborator.
// Collaborator call failures fall back to the shading rule and are noted in
// the response reasoning; a malformed-but-present reply is a hard error.
func (b *HeuristicBidder) GetBid(ctx context.Context, req core.BidRequest) (core.BidResponse, error) {
	if b.adaptive && b.gen != nil && len(req.History) > 0 {
		b.adjustShading(ctx, req)
	}

	fallbackBid := b.shading * req.PrivateValue

	if b.gen == nil {
		return core.BidResponse{
			AuctionID:  req.AuctionID,
			RoundIndex: req.RoundIndex,
			BidderID:   b.id,
			Bid:        fallbackBid,
			Reasoning:  fmt.Sprintf("Used heuristic shading factor %.2f.", b.shading),
		}, nil
	}

	raw, err := b.gen.Generate(ctx, buildHeuristicPrompt(req, fallbackBid, b.shading))
	if err != nil {
		return core.BidResponse{
			AuctionID:  req.AuctionID,
			RoundIndex: req.RoundIndex,
			BidderID:   b.id,
			Bid:        fallbackBid,
			Reasoning:  fmt.Sprintf("Collaborator unavailable (%v); used fallback shading rule %.2f.", err, b.shading),
		}, nil
	}

	parsed, err := llm.ParseBid(raw)
	if err != nil {
		return core.BidResponse{}, fmt.Errorf("bidder %s: parsing collaborator reply: %w", b.id, err)
	}
	if parsed.NewShadingFactor != nil {
		b.shading = clampShading(*parsed.NewShadingFactor)
	}

	return core.BidResponse{
		AuctionID:  req.AuctionID,
		RoundIndex: req.RoundIndex,
		BidderID:   b.id, // always our own ID, never the collaborator's
		Bid:        parsed.Bid,
		Reasoning:  parsed.Reasoning,
		RawText:    raw,
	}, nil
}

// adjustShading asks the collaborator for a new shading factor. Any failure
// (call error, no JSON, missing field) retains the current factor.
func (b *HeuristicBidder) adjustShading(ctx context.Context, req core.BidRequest) {
	raw, err := b.gen.Generate(ctx, buildAdaptivePrompt(req, b.shading))
	if err != nil {
		return
	}
	data, err := llm.ExtractJSON(raw)
	if err != nil {
		return
	}
	factor, ok := data["new_shading_factor"].(float64)
	if !ok {
		return
	}
	b.shading = clampShading(factor)
}

func clampShading(f float64) float64 {
	if f < ShadingMin {
		return ShadingMin
	}
	if f > ShadingMax {
		return ShadingMax
	}
	return f
}
