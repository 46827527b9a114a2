package core

import (
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestResolve_WinnerIsMaxBid(t *testing.T) {
	bids := map[string]float64{
		"B1": 0.72,
		"B2": 0.40,
		"B3": 0.60,
	}

	winner, price := Resolve(bids)

	check.Equal(t, "B1", winner)
	check.Equal(t, 0.60, price)
}

func TestResolve_EmptyBids(t *testing.T) {
	winner, price := Resolve(map[string]float64{})

	check.Equal(t, "", winner)
	check.Equal(t, 0.0, price)
}

func TestResolve_SingleBidderPaysZero(t *testing.T) {
	winner, price := Resolve(map[string]float64{"B1": 0.95})

	check.Equal(t, "B1", winner)
	check.Equal(t, 0.0, price)
}

func TestResolve_TieBrokenByLowestBidderID(t *testing.T) {
	bids := map[string]float64{
		"B3": 0.5,
		"B1": 0.5,
		"B2": 0.2,
	}

	winner, price := Resolve(bids)

	check.Equal(t, "B1", winner)
	check.Equal(t, 0.5, price)
}

func TestResolve_NegativeBids(t *testing.T) {
	bids := map[string]float64{
		"B1": -0.2,
		"B2": -0.5,
	}

	winner, price := Resolve(bids)

	check.Equal(t, "B1", winner)
	check.Equal(t, -0.5, price)
}

func TestResolveWithReserve_TopBidBelowReserve(t *testing.T) {
	bids := map[string]float64{
		"B1": 0.4,
		"B2": 0.3,
	}

	winner, price := ResolveWithReserve(bids, 0.5)

	check.Equal(t, "", winner)
	check.Equal(t, 0.0, price)
}

func TestResolveWithReserve_ReserveLiftsClearingPrice(t *testing.T) {
	bids := map[string]float64{
		"B1": 0.8,
		"B2": 0.3,
	}

	winner, price := ResolveWithReserve(bids, 0.5)

	check.Equal(t, "B1", winner)
	check.Equal(t, 0.5, price)
}

func TestResolveWithReserve_SecondBidAboveReserve(t *testing.T) {
	bids := map[string]float64{
		"B1": 0.8,
		"B2": 0.6,
	}

	winner, price := ResolveWithReserve(bids, 0.5)

	check.Equal(t, "B1", winner)
	check.Equal(t, 0.6, price)
}

func TestResolveWithReserve_ZeroReserveMatchesResolve(t *testing.T) {
	bids := map[string]float64{
		"B1": 0.7,
		"B2": 0.2,
	}

	winner, price := ResolveWithReserve(bids, 0.0)
	plainWinner, plainPrice := Resolve(bids)

	check.Equal(t, plainWinner, winner)
	check.Equal(t, plainPrice, price)
}

func TestResolveWithReserve_BidExactlyAtReserve(t *testing.T) {
	bids := map[string]float64{"B1": 0.5}

	winner, price := ResolveWithReserve(bids, 0.5)

	check.Equal(t, "B1", winner)
	check.Equal(t, 0.5, price)
}

func TestMeetsReserve(t *testing.T) {
	check.True(t, MeetsReserve(0.5, 0.5))
	check.True(t, MeetsReserve(0.51, 0.5))
	check.False(t, MeetsReserve(0.49, 0.5))
	// Within monetary precision the two are equal.
	check.True(t, MeetsReserve(0.500004, 0.5))
}
