// Package rng centralizes every random draw made by the simulation. All
// resolvers take a Source so a fixed seed replays a play exactly.
package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source is the seedable random stream threaded through the engine.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal draw.
	NormFloat64() float64
	// IntN returns a uniform draw in [0, n). Panics if n <= 0.
	IntN(n int) int
}

type pcgSource struct {
	r *rand.Rand
}

func (s *pcgSource) Float64() float64     { return s.r.Float64() }
func (s *pcgSource) NormFloat64() float64 { return s.r.NormFloat64() }
func (s *pcgSource) IntN(n int) int       { return s.r.IntN(n) }

// New returns a deterministic Source for the given seed.
func New(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, 0))}
}

// NewRandom returns a Source seeded from the operating system.
func NewRandom() Source {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return New(rand.Uint64())
	}
	return New(binary.BigEndian.Uint64(buf[:]))
}

// Chance reports whether a draw lands under probability p. Values at or
// below zero never hit; values at or above one always hit.
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}

// Gaussian returns a normal draw with the given mean and standard deviation.
func Gaussian(src Source, mean, stddev float64) float64 {
	if stddev <= 0 {
		return mean
	}
	return mean + src.NormFloat64()*stddev
}

// IntBetween returns a uniform integer in [low, high] inclusive.
func IntBetween(src Source, low, high int) int {
	if high <= low {
		return low
	}
	return low + src.IntN(high-low+1)
}
