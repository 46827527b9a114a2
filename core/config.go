package core

import "fmt"

// Validate checks the structural invariants of an AuctionConfig.
// First-price is recognized in configuration but has no resolution path, so
// it is rejected here rather than failing mid-simulation.
func (c AuctionConfig) Validate() error {
	if c.NumBidders < 1 {
		return fmt.Errorf("num_bidders must be at least 1, got %d", c.NumBidders)
	}
	if c.MinValue > c.MaxValue {
		return fmt.Errorf("min_value %.4f exceeds max_value %.4f", c.MinValue, c.MaxValue)
	}
	if c.ReservePrice < 0 {
		return fmt.Errorf("invalid negative reserve price %.4f", c.ReservePrice)
	}
	switch c.Mechanism {
	case MechanismSecondPrice:
	case MechanismFirstPrice:
		return fmt.Errorf("%w: %s", ErrUnsupportedMechanism, c.Mechanism)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedMechanism, c.Mechanism)
	}
	if c.ValueDistribution != "" && c.ValueDistribution != DistributionUniform {
		return fmt.Errorf("unsupported value distribution %q", c.ValueDistribution)
	}
	return nil
}
