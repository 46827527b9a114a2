package core

import (
	"errors"
	"math"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestEstimateBestResponse_Deterministic(t *testing.T) {
	first, err := EstimateBestResponse(0.7, 21)
	check.NoError(t, err)

	second, err := EstimateBestResponse(0.7, 21)
	check.NoError(t, err)

	check.Equal(t, first.BestBid, second.BestBid)
	check.Equal(t, first.ExpectedUtility, second.ExpectedUtility)
}

func TestEstimateBestResponse_GridTooSmall(t *testing.T) {
	_, err := EstimateBestResponse(0.5, 1)
	check.Error(t, err)
	check.True(t, errors.Is(err, ErrInvalidGrid))

	_, err = EstimateBestResponse(0.5, 0)
	check.Error(t, err)
}

func TestEstimateBestResponse_BidWithinGrid(t *testing.T) {
	result, err := EstimateBestResponse(0.8, 51)
	check.NoError(t, err)

	check.True(t, result.BestBid >= 0.0)
	check.True(t, result.BestBid <= 1.0)
}

func TestEstimateBestResponse_NearTruthfulAgainstTruthfulOpponents(t *testing.T) {
	// Truthful bidding is a dominant strategy in a second-price auction, so
	// the Monte Carlo argmax should land near the private value.
	result, err := EstimateBestResponse(0.8, 51)
	check.NoError(t, err)

	check.True(t, math.Abs(result.BestBid-0.8) < 0.15)
}

func TestEstimateBestResponse_PositiveUtilityForHighValue(t *testing.T) {
	result, err := EstimateBestResponse(1.0, 51)
	check.NoError(t, err)

	check.True(t, result.ExpectedUtility > 0.0)
}

func TestEstimateBestResponse_TwoPointGrid(t *testing.T) {
	result, err := EstimateBestResponse(0.9, 2)
	check.NoError(t, err)

	// Grid is exactly {0.0, 1.0}.
	check.True(t, result.BestBid == 0.0 || result.BestBid == 1.0)
}
