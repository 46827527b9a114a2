package core

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// DefaultGridPoints is the candidate-bid grid size used by the
	// strategic bidder.
	DefaultGridPoints = 101

	bestResponseOpponents = 2
	bestResponseSamples   = 500
	bestResponseSeed      = 0
	bestResponseSubjectID = "me"
)

// BestResponse is the estimator's recommendation for a private value.
type BestResponse struct {
	BestBid         float64 `json:"best_bid"`
	ExpectedUtility float64 `json:"expected_utility"`
}

// EstimateBestResponse approximates the utility-maximizing bid in a
// second-price auction against truthful opponents whose values are i.i.d.
// uniform on [0,1].
//
// Candidate bids form an evenly spaced grid over [0,1] inclusive of both
// ends. Each candidate is evaluated by Monte Carlo: opponent value vectors
// are drawn, the full payoff calculation runs for each sample, and payoffs
// to the subject are averaged. The grid is scanned ascending with strict
// replacement, so ties resolve to the lowest bid.
//
// The PRNG is reseeded on every call, making the estimate a pure function of
// (privateValue, gridPoints). Callers depend on that determinism for
// reproducible strategic bids. Cost is O(gridPoints × samples).
func EstimateBestResponse(privateValue float64, gridPoints int) (BestResponse, error) {
	if gridPoints < 2 {
		return BestResponse{}, fmt.Errorf("%w: got %d", ErrInvalidGrid, gridPoints)
	}

	rng := rand.New(rand.NewSource(bestResponseSeed))

	bestBid := 0.0
	bestUtility := math.Inf(-1)

	for i := 0; i < gridPoints; i++ {
		candidate := float64(i) / float64(gridPoints-1)

		total := 0.0
		for s := 0; s < bestResponseSamples; s++ {
			bids := map[string]float64{bestResponseSubjectID: candidate}
			values := map[string]float64{bestResponseSubjectID: privateValue}

			for j := 0; j < bestResponseOpponents; j++ {
				oppID := fmt.Sprintf("opp_%d", j)
				oppValue := rng.Float64()
				values[oppID] = oppValue
				bids[oppID] = oppValue // truthful opponent
			}

			outcome, err := ComputePayoffs(bids, values, "best_response_probe", 0)
			if err != nil {
				return BestResponse{}, fmt.Errorf("best response sample: %w", err)
			}
			total += outcome.Payoffs[bestResponseSubjectID]
		}

		avg := total / bestResponseSamples
		if avg > bestUtility {
			bestUtility = avg
			bestBid = candidate
		}
	}

	return BestResponse{BestBid: bestBid, ExpectedUtility: bestUtility}, nil
}
