package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/peterldowns/testy/check"

	"github.com/auctionlab/bidsim/core"
)

func TestStrategicBidder_NoCollaboratorUsesEstimator(t *testing.T) {
	bidder := NewStrategicBidder("B2", nil)

	resp, err := bidder.GetBid(context.Background(), bidRequest("B2", 0.7, nil))
	check.NoError(t, err)

	rec, err := core.EstimateBestResponse(0.7, core.DefaultGridPoints)
	check.NoError(t, err)

	check.Equal(t, rec.BestBid, resp.Bid)
	check.Equal(t, "B2", resp.BidderID)
}

func TestStrategicBidder_CollaboratorFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout")}
	bidder := NewStrategicBidder("B2", gen)

	resp, err := bidder.GetBid(context.Background(), bidRequest("B2", 0.7, nil))
	check.NoError(t, err)

	rec, err := core.EstimateBestResponse(0.7, core.DefaultGridPoints)
	check.NoError(t, err)

	check.Equal(t, rec.BestBid, resp.Bid)
	check.True(t, strings.Contains(resp.Reasoning, "best-response recommendation"))
}

func TestStrategicBidder_CollaboratorBidUsed(t *testing.T) {
	gen := &stubGenerator{replies: []string{`{"bid": 0.66, "reasoning": "close to the recommendation"}`}}
	bidder := NewStrategicBidder("B2", gen)

	resp, err := bidder.GetBid(context.Background(), bidRequest("B2", 0.7, nil))

	check.NoError(t, err)
	check.Equal(t, 0.66, resp.Bid)
	check.NotEqual(t, "", resp.RawText)
}

func TestStrategicBidder_MalformedReplyIsHardError(t *testing.T) {
	gen := &stubGenerator{replies: []string{`no json`}}
	bidder := NewStrategicBidder("B2", gen)

	_, err := bidder.GetBid(context.Background(), bidRequest("B2", 0.7, nil))

	check.Error(t, err)
}

func TestStrategicBidder_PromptCarriesRecommendation(t *testing.T) {
	gen := &stubGenerator{replies: []string{`{"bid": 0.66}`}}
	bidder := NewStrategicBidder("B2", gen)

	_, err := bidder.GetBid(context.Background(), bidRequest("B2", 0.7, nil))

	check.NoError(t, err)
	check.Equal(t, 1, len(gen.prompts))
	check.True(t, strings.Contains(gen.prompts[0], "best_response_recommendation"))
}
