package core

import (
	"crypto/sha256"
	"fmt"
	"sort"
)

// ComputeOutcomeHash computes a tamper-evidence hash over a resolved round,
// written into the round log so a run transcript can be audited after the
// fact.
//
// Formula: SHA256(auction_id + "|" + round + "|" + winner + "|" +
// sprintf("%.6f", clearing_price) + "|" + sorted bidder:bid pairs)
//
// Prices and bids are formatted to exactly 6 decimal places and bidders are
// sorted so the hash is independent of map iteration order.
func ComputeOutcomeHash(outcome AuctionOutcome) string {
	data := fmt.Sprintf("%s|%d|%s|%.6f", outcome.AuctionID, outcome.RoundIndex, outcome.WinnerID, outcome.ClearingPrice)

	bidders := make([]string, 0, len(outcome.Bids))
	for bidder := range outcome.Bids {
		bidders = append(bidders, bidder)
	}
	sort.Strings(bidders)

	for _, bidder := range bidders {
		data += fmt.Sprintf("|%s:%.6f", bidder, outcome.Bids[bidder])
	}
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
