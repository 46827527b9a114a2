package core

import "errors"

var (
	// ErrMissingValue indicates a bid whose bidder has no private value entry.
	ErrMissingValue = errors.New("bidder has no private value entry")

	// ErrInvalidGrid indicates a best-response grid with fewer than two points.
	ErrInvalidGrid = errors.New("grid must have at least 2 points")

	// ErrUnsupportedMechanism indicates a mechanism other than second_price.
	ErrUnsupportedMechanism = errors.New("unsupported auction mechanism")
)
