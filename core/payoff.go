package core

import "fmt"

// ComputePayoffs resolves a second-price auction over the given bids and
// computes quasilinear payoffs for every participant.
//
// Winner payoff is value minus clearing price; it may be negative when an
// aggressive bid wins above true value, which is intentional. All losers get
// 0.0. Revenue equals the clearing price for a single-item sale.
//
// Every bidder present in bids must have an entry in values; a missing value
// is rejected rather than silently defaulted.
func ComputePayoffs(bids, values map[string]float64, auctionID string, roundIndex int) (AuctionOutcome, error) {
	winnerID, clearingPrice := Resolve(bids)
	return assembleOutcome(bids, values, auctionID, roundIndex, winnerID, clearingPrice)
}

// ComputePayoffsWithReserve is ComputePayoffs under a reserve price: no sale
// (empty winner, zero price, all payoffs 0.0) when the top bid fails the
// reserve.
func ComputePayoffsWithReserve(bids, values map[string]float64, auctionID string, roundIndex int, reserve float64) (AuctionOutcome, error) {
	winnerID, clearingPrice := ResolveWithReserve(bids, reserve)
	return assembleOutcome(bids, values, auctionID, roundIndex, winnerID, clearingPrice)
}

func assembleOutcome(bids, values map[string]float64, auctionID string, roundIndex int, winnerID string, clearingPrice float64) (AuctionOutcome, error) {
	for bidderID := range bids {
		if _, ok := values[bidderID]; !ok {
			return AuctionOutcome{}, fmt.Errorf("%w: %s", ErrMissingValue, bidderID)
		}
	}

	payoffs := make(map[string]float64, len(values))
	for bidderID, value := range values {
		if bidderID == winnerID {
			payoffs[bidderID] = value - clearingPrice
		} else {
			payoffs[bidderID] = 0.0
		}
	}

	return AuctionOutcome{
		AuctionID:     auctionID,
		RoundIndex:    roundIndex,
		WinnerID:      winnerID,
		ClearingPrice: clearingPrice,
		Revenue:       clearingPrice,
		Bids:          bids,
		Values:        values,
		Payoffs:       payoffs,
	}, nil
}
