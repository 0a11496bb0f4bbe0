// SPDX-License-Identifier: MIT
// Package: specimens/seed
//
// seed.go - the Seed contract and its constructors.
//
// Contract:
//   - NextInt(min,max) is uniform over [min,max] inclusive; bounds are swapped if reversed.
//   - Split() is pure: splitting equal seeds yields equal children.
//   - No operation fails for valid int64 bounds.

package seed

import "time"

// Seed is an immutable splittable pseudo-random state.
type Seed interface {
	// NextInt returns a uniform integer in [min, max] together with the
	// advanced seed.
	NextInt(min, max int64) (int64, Seed)

	// NextFloat returns a uniform float64 in [0, 1) together with the
	// advanced seed.
	NextFloat() (float64, Seed)

	// Split derives two independent children. It does not draw a number.
	Split() (Seed, Seed)
}

// New returns a reproducible seed derived from n.
// Complexity: O(1).
func New(n int64) Seed {
	return newSplitMix(uint64(n))
}

// Spawn returns a seed derived from wall-clock entropy. It is the only
// non-deterministic constructor in the module.
func Spawn() Seed {
	return New(time.Now().UnixNano())
}
