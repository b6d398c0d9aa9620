package lifespan

import "lifespan-ca/internal/core"

// MinLifespan is the shortest lifespan a newborn cell can receive.
const MinLifespan = 2

// LifespanSource hands out lifespans for newborn cells.
type LifespanSource interface {
	Next() int
}

// RandomLifespan draws lifespans uniformly from [MinLifespan, max] using a
// seedable PCG generator, so runs with the same seed are reproducible.
type RandomLifespan struct {
	rng *core.RNG
	max int
}

// NewRandomLifespan returns a generator for [MinLifespan, max]. A max below
// MinLifespan is raised to MinLifespan.
func NewRandomLifespan(seed int64, max int) *RandomLifespan {
	if max < MinLifespan {
		max = MinLifespan
	}
	return &RandomLifespan{rng: core.NewRNG(seed), max: max}
}

// Next returns the next lifespan.
func (r *RandomLifespan) Next() int {
	return r.rng.IntRange(MinLifespan, r.max)
}

// Max reports the inclusive upper bound.
func (r *RandomLifespan) Max() int { return r.max }

// SetMax changes the inclusive upper bound for subsequent draws.
func (r *RandomLifespan) SetMax(max int) {
	if max < MinLifespan {
		max = MinLifespan
	}
	r.max = max
}

// Reseed restarts the sequence from seed.
func (r *RandomLifespan) Reseed(seed int64) {
	r.rng.Seed(seed)
}
