package core

import (
	"github.com/shopspring/decimal"
)

const monetaryPrecision int32 = 4 // 4 decimal places (0.0001 precision)

// MeetsReserve returns true if the bid meets or exceeds the reserve price.
// Uses decimal arithmetic at monetaryPrecision to avoid floating-point errors
// on bids sitting exactly at the reserve.
func MeetsReserve(bid, reserve float64) bool {
	bidDecimal := decimal.NewFromFloat(bid).Round(monetaryPrecision)
	reserveDecimal := decimal.NewFromFloat(reserve).Round(monetaryPrecision)

	return bidDecimal.GreaterThanOrEqual(reserveDecimal)
}
