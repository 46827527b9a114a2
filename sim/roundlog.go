package sim

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/auctionlab/bidsim/core"
)

// RoundLog writes a plain-text transcript of each round: every bid with its
// rationale, the winner and clearing price, and a SHA-256 outcome hash for
// after-the-fact auditing. The file is truncated on the first round of a run
// and appended thereafter.
type RoundLog struct {
	path string
	file *os.File
}

// NewRoundLog creates a round log writer for the given path. The file is not
// touched until the first round is written.
func NewRoundLog(path string) *RoundLog {
	return &RoundLog{path: path}
}

// WriteRound appends one round's transcript block.
func (rl *RoundLog) WriteRound(outcome core.AuctionOutcome, responses map[string]core.BidResponse) error {
	if rl.file == nil {
		f, err := os.Create(rl.path)
		if err != nil {
			return fmt.Errorf("creating round log: %w", err)
		}
		rl.file = f
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== Round %d (auction %s) ===\n", outcome.RoundIndex, outcome.AuctionID)

	for _, bidderID := range sortedKeys(outcome.Bids) {
		fmt.Fprintf(&b, "  %s: bid %.4f (value %.4f)", bidderID, outcome.Bids[bidderID], outcome.Values[bidderID])
		if resp, ok := responses[bidderID]; ok && resp.Reasoning != "" {
			fmt.Fprintf(&b, " — %s", resp.Reasoning)
		}
		b.WriteString("\n")
	}

	if outcome.WinnerID == "" {
		b.WriteString("  no sale\n")
	} else {
		fmt.Fprintf(&b, "  winner: %s at clearing price %.4f\n", outcome.WinnerID, outcome.ClearingPrice)
	}
	fmt.Fprintf(&b, "  outcome_hash: %s\n\n", core.ComputeOutcomeHash(outcome))

	if _, err := rl.file.WriteString(b.String()); err != nil {
		return fmt.Errorf("writing round log: %w", err)
	}
	return nil
}

// WriteSummary appends the end-of-run summary block.
func (rl *RoundLog) WriteSummary(summary core.SimulationSummary) error {
	if rl.file == nil {
		return nil // no rounds were written
	}

	var b strings.Builder
	b.WriteString("=== Simulation summary ===\n")
	fmt.Fprintf(&b, "  rounds: %d\n", summary.NumRounds)
	fmt.Fprintf(&b, "  mean revenue: %.4f\n", summary.MeanRevenue)
	for _, bidderID := range sortedKeys(summary.MeanUtilityPerBidder) {
		fmt.Fprintf(&b, "  %s: mean utility %.4f, win rate %.1f%%\n",
			bidderID, summary.MeanUtilityPerBidder[bidderID], summary.DistributionOfWinners[bidderID]*100)
	}

	if _, err := rl.file.WriteString(b.String()); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (rl *RoundLog) Close() error {
	if rl.file == nil {
		return nil
	}
	err := rl.file.Close()
	rl.file = nil
	return err
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
