// SPDX-License-Identifier: MIT
// Package: specimens/numeric
//
// numeric.go - the Numeric contract and its integer/float instances.
//
// Notes:
//   - Integral division truncates toward zero, which is what makes shrinking
//     by halving converge.
//   - Random draws from the inclusive range [min, max]; reversed bounds are
//     swapped.

package numeric

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/specimens/seed"
)

// Numeric is the arithmetic the engine needs over a scalar type N.
type Numeric[N any] interface {
	Zero() N
	One() N
	Add(l, r N) N
	Sub(l, r N) N
	Mul(l, r N) N
	Div(l, r N) N
	Eq(l, r N) bool
	Less(l, r N) bool
	Min(x, y N) N
	Max(x, y N) N

	// FromInt converts a small integer constant into N.
	FromInt(n int64) N

	// Random draws uniformly between min and max and returns the advanced seed.
	Random(s seed.Seed, min, max N) (N, seed.Seed)
}

// Ready-made instances for the common scalar types.
var (
	Int     = Integral[int]()
	Int64   = Integral[int64]()
	Float64 = Floating[float64]()
)

// Integral returns the Numeric for a signed integer type.
func Integral[N constraints.Signed]() Numeric[N] { return integral[N]{} }

// Floating returns the Numeric for a float type.
func Floating[N constraints.Float]() Numeric[N] { return floating[N]{} }

type integral[N constraints.Signed] struct{}

func (integral[N]) Zero() N { return 0 }
func (integral[N]) One() N { return 1 }
func (integral[N]) Add(l, r N) N { return l + r }
func (integral[N]) Sub(l, r N) N { return l - r }
func (integral[N]) Mul(l, r N) N { return l * r }
func (integral[N]) Div(l, r N) N { return l / r }
func (integral[N]) Eq(l, r N) bool { return l == r }
func (integral[N]) Less(l, r N) bool { return l < r }
func (integral[N]) Min(x, y N) N { return min(x, y) }
func (integral[N]) Max(x, y N) N { return max(x, y) }
func (integral[N]) FromInt(n int64) N { return N(n) }

func (integral[N]) Random(s seed.Seed, lo, hi N) (N, seed.Seed) {
	v, next := s.NextInt(int64(lo), int64(hi))
	return N(v), next
}

type floating[N constraints.Float] struct{}

func (floating[N]) Zero() N { return 0 }
func (floating[N]) One() N { return 1 }
func (floating[N]) Add(l, r N) N { return l + r }
func (floating[N]) Sub(l, r N) N { return l - r }
func (floating[N]) Mul(l, r N) N { return l * r }
func (floating[N]) Div(l, r N) N { return l / r }
func (floating[N]) Eq(l, r N) bool { return l == r }
func (floating[N]) Less(l, r N) bool { return l < r }
func (floating[N]) Min(x, y N) N { return min(x, y) }
func (floating[N]) Max(x, y N) N { return max(x, y) }
func (floating[N]) FromInt(n int64) N { return N(n) }

func (floating[N]) Random(s seed.Seed, lo, hi N) (N, seed.Seed) {
	if hi < lo {
		lo, hi = hi, lo
	}
	f, next := s.NextFloat()
	// interpolate instead of lo+f*(hi-lo) so that hi-lo cannot overflow
	v := N(float64(lo)*(1-f) + float64(hi)*f)
	return min(max(v, lo), hi), next
}
