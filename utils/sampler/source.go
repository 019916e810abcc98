// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sampler provides the deterministic RNG primitives spec'd in
// §4.1: 64-bit identifier generation and unbiased subset sampling
// without replacement.
package sampler

import "math/rand"

// Source is a seeded source of randomness. It is the single stream
// every draw in a simulation run comes from, which is what makes a
// run reproducible bit-exactly given the same seed.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded deterministically.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Uint64 returns a uniformly distributed 64-bit unsigned integer,
// suitable for use as a Transaction or Block identifier.
func (s *Source) Uint64() uint64 { return s.rng.Uint64() }

// Float64 returns a uniformly distributed float in [0, 1), used for
// the transaction_spawn / conflict_transaction_spawn Bernoulli draws.
func (s *Source) Float64() float64 { return s.rng.Float64() }

// Intn returns a uniformly distributed int in [0, n).
func (s *Source) Intn(n int) int { return s.rng.Intn(n) }
