package core

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG keyed by the provided seed. The 16 seed
// bytes are repeated to fill the 32-byte ChaCha8 key.
func NewRNG(seed uuid.UUID) *RNG {
	var key [32]byte
	copy(key[:16], seed[:])
	copy(key[16:], seed[:])
	return &RNG{r: rand.New(rand.NewChaCha8(key))}
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Range returns a uniform value in [lo, hi). An empty or inverted interval
// yields lo.
func (r *RNG) Range(lo, hi float64) float64 {
	if !(hi > lo) {
		return lo
	}
	return lo + (hi-lo)*r.r.Float64()
}

// IntRange returns a random int in [lo, hi).
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo)
}

// Int64 returns a random non-negative int64.
func (r *RNG) Int64() int64 {
	return r.r.Int64()
}
