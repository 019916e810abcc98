// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

// Sample returns k distinct values from [0, n) \ {u}, drawn uniformly
// without replacement. Order is not semantically significant to
// callers (spec.md §4.1).
//
// It is a configuration error, not a runtime one, for fewer than k
// eligible values to exist; callers are expected to validate
// k <= n-1 at startup (spec.md §4.5 failure semantics) and this
// function panics if that invariant was not upheld, since reaching it
// indicates a configuration bug that should have been caught earlier.
func (s *Source) Sample(n, k int, u int) []int {
	if n <= 0 || k < 0 || k > n-1 {
		panic(fmt.Sprintf("sampler: cannot draw %d distinct values from a population of %d excluding one element", k, n))
	}

	// Partial Fisher-Yates over the population excluding u: build the
	// population implicitly as [0, n) \ {u} via the same index-shift
	// trick as the reference implementation (skip over u by adding 1
	// to any drawn index >= u), then shuffle only the first k slots.
	pool := make([]int, n-1)
	for i := range pool {
		pool[i] = i
	}

	for i := 0; i < k; i++ {
		j := i + s.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	out := make([]int, k)
	for i := 0; i < k; i++ {
		v := pool[i]
		if v >= u {
			v++
		}
		out[i] = v
	}
	return out
}
