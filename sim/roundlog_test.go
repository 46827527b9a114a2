package sim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterldowns/testy/check"

	"github.com/auctionlab/bidsim/core"
)

func sampleOutcome(round int) core.AuctionOutcome {
	return core.AuctionOutcome{
		AuctionID:     "auction_001",
		RoundIndex:    round,
		WinnerID:      "A",
		ClearingPrice: 0.6,
		Revenue:       0.6,
		Bids:          map[string]float64{"A": 0.9, "B": 0.6},
		Values:        map[string]float64{"A": 0.95, "B": 0.65},
		Payoffs:       map[string]float64{"A": 0.35, "B": 0.0},
	}
}

func TestRoundLog_WriteAndAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.log")
	rl := NewRoundLog(path)
	defer rl.Close()

	responses := map[string]core.BidResponse{
		"A": {BidderID: "A", Bid: 0.9, Reasoning: "shaded my value"},
	}

	check.NoError(t, rl.WriteRound(sampleOutcome(0), responses))
	check.NoError(t, rl.WriteRound(sampleOutcome(1), nil))

	content, err := os.ReadFile(path)
	check.NoError(t, err)

	text := string(content)
	check.True(t, strings.Contains(text, "=== Round 0"))
	check.True(t, strings.Contains(text, "=== Round 1"))
	check.True(t, strings.Contains(text, "shaded my value"))
	check.True(t, strings.Contains(text, "winner: A at clearing price 0.6000"))
	check.True(t, strings.Contains(text, "outcome_hash: "))
}

func TestRoundLog_TruncatesOnFirstRound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.log")
	check.NoError(t, os.WriteFile(path, []byte("stale content from a previous run\n"), 0o644))

	rl := NewRoundLog(path)
	defer rl.Close()

	check.NoError(t, rl.WriteRound(sampleOutcome(0), nil))

	content, err := os.ReadFile(path)
	check.NoError(t, err)
	check.False(t, strings.Contains(string(content), "stale content"))
}

func TestRoundLog_NoSale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.log")
	rl := NewRoundLog(path)
	defer rl.Close()

	outcome := sampleOutcome(0)
	outcome.WinnerID = ""
	outcome.ClearingPrice = 0.0
	outcome.Revenue = 0.0

	check.NoError(t, rl.WriteRound(outcome, nil))

	content, err := os.ReadFile(path)
	check.NoError(t, err)
	check.True(t, strings.Contains(string(content), "no sale"))
}

func TestRoundLog_Summary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.log")
	rl := NewRoundLog(path)
	defer rl.Close()

	check.NoError(t, rl.WriteRound(sampleOutcome(0), nil))

	summary := core.SimulationSummary{
		NumRounds:             1,
		MeanRevenue:           0.6,
		MeanUtilityPerBidder:  map[string]float64{"A": 0.35, "B": 0.0},
		DistributionOfWinners: map[string]float64{"A": 1.0, "B": 0.0},
	}
	check.NoError(t, rl.WriteSummary(summary))

	content, err := os.ReadFile(path)
	check.NoError(t, err)
	check.True(t, strings.Contains(string(content), "=== Simulation summary ==="))
	check.True(t, strings.Contains(string(content), "win rate 100.0%"))
}
