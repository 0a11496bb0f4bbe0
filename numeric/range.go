// SPDX-License-Identifier: MIT
// Package: specimens/numeric
//
// range.go - size-scaled ranges.
//
// Contract:
//   - Bounds(size) always lies within [min, max], for every size.
//   - Sizes outside [0, MaxSize] are clamped.
//   - Linear scaling never overflows N, even for ranges spanning the whole type.

package numeric

import "fmt"

// Size controls how far generated values may range from their origin.
type Size int

// MaxSize is the size at which a linear range reaches its full bounds.
const MaxSize Size = 99

// Range describes a domain of N whose bounds depend on size. Origin is the
// value shrinking moves towards.
type Range[N any] struct {
	Origin N
	bounds func(Size) (N, N)
}

// Bounds returns the (min, max) pair in effect at size.
// The zero Range yields (Origin, Origin).
func (r Range[N]) Bounds(size Size) (N, N) {
	if r.bounds == nil {
		return r.Origin, r.Origin
	}
	return r.bounds(min(max(size, 0), MaxSize))
}

// Constant returns a range that ignores size. Its origin is min.
// Panics with ErrInvalidRange if max < min.
func Constant[N any](num Numeric[N], lo, hi N) Range[N] {
	return ConstantFrom(num, lo, lo, hi)
}

// ConstantFrom is Constant with an explicit origin.
func ConstantFrom[N any](num Numeric[N], origin, lo, hi N) Range[N] {
	mustValid(num, origin, lo, hi)
	return Range[N]{
		Origin: origin,
		bounds: func(Size) (N, N) { return lo, hi },
	}
}

// Linear returns a range that grows from min at size 0 to [min, max] at
// MaxSize. Its origin is min.
// Panics with ErrInvalidRange if max < min.
func Linear[N any](num Numeric[N], lo, hi N) Range[N] {
	return LinearFrom(num, lo, lo, hi)
}

// LinearFrom returns a range that grows outwards from origin at size 0 to
// [min, max] at MaxSize.
// Panics with ErrInvalidRange if max < min or origin is outside [min, max].
func LinearFrom[N any](num Numeric[N], origin, lo, hi N) Range[N] {
	mustValid(num, origin, lo, hi)
	return Range[N]{
		Origin: origin,
		bounds: func(size Size) (N, N) {
			if size == MaxSize {
				return lo, hi
			}
			a := clamp(num, lo, hi, scaleLinear(num, size, origin, lo))
			b := clamp(num, lo, hi, scaleLinear(num, size, origin, hi))
			return a, b
		},
	}
}

func mustValid[N any](num Numeric[N], origin, lo, hi N) {
	if num.Less(hi, lo) {
		panic(fmt.Errorf("%w: min %v > max %v", ErrInvalidRange, lo, hi))
	}
	if num.Less(origin, lo) || num.Less(hi, origin) {
		panic(fmt.Errorf("%w: origin %v outside [%v, %v]", ErrInvalidRange, origin, lo, hi))
	}
}

func clamp[N any](num Numeric[N], lo, hi, n N) N {
	return num.Min(hi, num.Max(lo, n))
}

// scaleLinear moves from origin towards bound by size/MaxSize of the distance.
func scaleLinear[N any](num Numeric[N], size Size, origin, bound N) N {
	d := num.Sub(bound, origin)
	wrapped := num.Less(bound, origin) != num.Less(d, num.Zero())
	infinite := !num.Eq(num.Sub(d, d), num.Zero())
	if !wrapped && !infinite {
		return num.Add(origin, scaleDistance(num, size, d))
	}

	// bound-origin overflowed N (wrapped for integers, infinite for floats):
	// scale half the distance and apply it twice.
	two := num.FromInt(2)
	half := num.Sub(num.Div(bound, two), num.Div(origin, two))
	step := scaleDistance(num, size, half)
	return num.Add(num.Add(origin, step), step)
}

// scaleDistance computes d*size/MaxSize without forming d*size.
func scaleDistance[N any](num Numeric[N], size Size, d N) N {
	m := num.FromInt(int64(MaxSize))
	s := num.FromInt(int64(size))
	q := num.Div(d, m)
	r := num.Sub(d, num.Mul(q, m))
	return num.Add(num.Mul(q, s), num.Div(num.Mul(r, s), m))
}
