package core

import "math/rand"

// ValueSampler draws i.i.d. private values from a continuous uniform
// distribution on [min, max].
type ValueSampler struct {
	min float64
	max float64
	rng *rand.Rand
}

// NewValueSampler builds a sampler over [min, max]. A non-nil seed produces a
// reproducible sequence; a nil seed uses the process-wide source.
func NewValueSampler(min, max float64, seed *int64) *ValueSampler {
	s := &ValueSampler{min: min, max: max}
	if seed != nil {
		s.rng = rand.New(rand.NewSource(*seed))
	}
	return s
}

// SamplerForConfig builds the sampler matching an AuctionConfig.
func SamplerForConfig(cfg AuctionConfig) *ValueSampler {
	return NewValueSampler(cfg.MinValue, cfg.MaxValue, cfg.RandomSeed)
}

// Sample draws one private value.
func (s *ValueSampler) Sample() float64 {
	var f float64
	if s.rng != nil {
		f = s.rng.Float64()
	} else {
		f = rand.Float64()
	}
	return s.min + (s.max-s.min)*f
}
