// Package shrink produces lazy sequences of "smaller" candidates for a value.
//
// Candidates are ordered most aggressive first: Towards yields the
// destination itself before successively finer steps back towards the
// original value, so a search that takes the first failing candidate at each
// level reaches a minimal counterexample in logarithmically many steps.
package shrink

import (
	"iter"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/sequence"
)

// Shrinker maps a value to its candidate shrinks.
type Shrinker[T any] func(x T) iter.Seq[T]

// None is the shrinker for unshrinkable values.
func None[T any]() Shrinker[T] {
	return func(T) iter.Seq[T] { return sequence.Empty[T]() }
}

// Towards shrinks x towards dest. The result is empty when x equals dest,
// otherwise dest followed by dest+d/2, dest+d/4, ... where d = x-dest, ending
// once the halved distance reaches zero or stops changing.
//
//	Towards(numeric.Int, 0)(64)  // 0 32 16 8 4 2 1
//	Towards(numeric.Int, 10)(74) // 10 42 26 18 14 12 11
func Towards[N any](num numeric.Numeric[N], dest N) Shrinker[N] {
	return func(x N) iter.Seq[N] {
		if num.Eq(dest, x) {
			return sequence.Empty[N]()
		}
		halves := sequence.Map(halvings(num, num.Sub(x, dest)), func(h N) N {
			return num.Add(dest, h)
		})
		return sequence.Cons(dest, halves)
	}
}

// halvings yields d/2, d/4, ... while the value is nonzero and still moving.
func halvings[N any](num numeric.Numeric[N], d N) iter.Seq[N] {
	two := num.Add(num.One(), num.One())
	return func(yield func(N) bool) {
		prev := d
		for {
			next := num.Div(prev, two)
			if num.Eq(next, num.Zero()) || num.Eq(next, prev) {
				return
			}
			if !yield(next) {
				return
			}
			prev = next
		}
	}
}
