package core

import (
	"math"
	"sort"
)

// Resolve runs the second-price rule over a sealed bid set.
//
// The winner is the highest bid; ties on the top bid are broken by
// lexicographically smallest bidder ID so resolution is deterministic
// regardless of map iteration order. The clearing price is the second-highest
// bid when at least two bidders are present, and 0.0 for a single bidder
// (standard Vickrey semantics with no effective competitor).
//
// An empty bid set returns ("", 0.0).
func Resolve(bids map[string]float64) (winnerID string, clearingPrice float64) {
	if len(bids) == 0 {
		return "", 0.0
	}

	bidders := sortedBidders(bids)

	best := math.Inf(-1)
	second := math.Inf(-1)
	for _, id := range bidders {
		bid := bids[id]
		// Strict comparison over ascending IDs keeps the lowest tied ID.
		if bid > best {
			second = best
			best = bid
			winnerID = id
		} else if bid > second {
			second = bid
		}
	}

	if len(bids) < 2 {
		return winnerID, 0.0
	}
	return winnerID, second
}

// ResolveWithReserve applies a reserve price on top of Resolve. A sale only
// happens when the winning bid meets the reserve (decimal comparison at
// monetary precision); the winner then pays max(second-highest bid, reserve).
// With a zero reserve this is exactly Resolve.
func ResolveWithReserve(bids map[string]float64, reserve float64) (winnerID string, clearingPrice float64) {
	winnerID, clearingPrice = Resolve(bids)
	if winnerID == "" || reserve <= 0 {
		return winnerID, clearingPrice
	}
	if !MeetsReserve(bids[winnerID], reserve) {
		return "", 0.0
	}
	if clearingPrice < reserve {
		clearingPrice = reserve
	}
	return winnerID, clearingPrice
}

func sortedBidders(bids map[string]float64) []string {
	bidders := make([]string, 0, len(bids))
	for id := range bids {
		bidders = append(bidders, id)
	}
	sort.Strings(bidders)
	return bidders
}
