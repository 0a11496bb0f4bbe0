// SPDX-License-Identifier: MIT
// Package: specimens/specimens
//
// generator.go - the Generator type and its primitive constructors.
//
// Contract:
//   - One production per draw. Retries exist only inside Filter.
//   - A generator that yields no production for a run is exhausted.

package specimens

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/outcome"
	"github.com/katalvlaran/specimens/random"
	"github.com/katalvlaran/specimens/seed"
	"github.com/katalvlaran/specimens/sequence"
	"github.com/katalvlaran/specimens/shrink"
	"github.com/katalvlaran/specimens/tree"
)

// Draw is a single production of a generator: an accepted shrink tree or a
// rejection, paired with the seed left over.
type Draw[T any] = random.Production[outcome.Outcome[tree.Tree[T]]]

// Generator produces shrinkable candidates of T. The zero Generator is
// exhausted.
type Generator[T any] struct {
	r random.Random[outcome.Outcome[tree.Tree[T]]]
}

// FromRandom wraps a Random of tree outcomes.
func FromRandom[T any](r random.Random[outcome.Outcome[tree.Tree[T]]]) Generator[T] {
	return Generator[T]{r: r}
}

// Run executes one draw of g.
func (g Generator[T]) Run(s seed.Seed, size numeric.Size) iter.Seq[Draw[T]] {
	if g.r == nil {
		return sequence.Empty[Draw[T]]()
	}
	return g.r(s, size)
}

// Random exposes g as a Random of tree outcomes.
func (g Generator[T]) Random() random.Random[outcome.Outcome[tree.Tree[T]]] {
	return g.Run
}

// Create builds a generator from a value source and a shrinker.
func Create[T any](r random.Random[T], shrinker shrink.Shrinker[T]) Generator[T] {
	return FromRandom(random.Map(r, func(x T) outcome.Outcome[tree.Tree[T]] {
		return outcome.Accept(tree.Unfold(x, identity[T], shrinker))
	}))
}

// Rejected rejects every draw.
func Rejected[T any]() Generator[T] {
	return FromRandom(random.Constant(outcome.Reject[tree.Tree[T]]()))
}

// Exhausted never produces anything.
func Exhausted[T any]() Generator[T] {
	return Generator[T]{}
}

// Constant always accepts x, without shrinks.
func Constant[T any](x T) Generator[T] {
	return Create(random.Constant(x), shrink.None[T]())
}

// Infinite yields x without end on every run.
func Infinite[T any](x T) Generator[T] {
	return Create(random.Infinite(x), shrink.None[T]())
}

// Integral draws from rng and shrinks towards rng.Origin.
func Integral[N any](num numeric.Numeric[N], rng numeric.Range[N]) Generator[N] {
	return Create(random.Integral(num, rng), shrink.Towards(num, rng.Origin))
}

// Integer is Integral over int.
func Integer(rng numeric.Range[int]) Generator[int] {
	return Integral(numeric.Int, rng)
}

// Item picks an element of xs, shrinking towards the first one. It is
// exhausted when xs is empty.
func Item[T any](xs []T) Generator[T] {
	if len(xs) == 0 {
		return Exhausted[T]()
	}
	items := append([]T(nil), xs...)
	return Map(Integer(numeric.Constant(numeric.Int, 0, len(items)-1)), func(i int) T {
		return items[i]
	})
}

// Weighted pairs a generator with its relative weight.
type Weighted[T any] struct {
	Weight int
	Gen    Generator[T]
}

// PickWeighted chooses one of the generators with probability proportional
// to its weight, then draws from it. Shrinking moves towards earlier entries.
// It is exhausted when items is empty and panics with ErrInvalidWeight when a
// weight is below 1. The pick is uniform over [1, total], so a weight-w item
// owns exactly w of the total values.
func PickWeighted[T any](items []Weighted[T]) Generator[T] {
	if len(items) == 0 {
		return Exhausted[T]()
	}
	cumulative := make([]int, len(items))
	gens := make([]Generator[T], len(items))
	total := 0
	for i, it := range items {
		if it.Weight < 1 {
			panic(fmt.Errorf("%w: item %d has weight %d", ErrInvalidWeight, i, it.Weight))
		}
		total += it.Weight
		cumulative[i] = total
		gens[i] = it.Gen
	}

	pick := Integer(numeric.Constant(numeric.Int, 1, total))
	return Bind(pick, func(n int) Generator[T] {
		return gens[bucket(cumulative, n)]
	})
}

// bucket returns the first index whose cumulative weight reaches n.
func bucket(cumulative []int, n int) int {
	lo, hi := 0, len(cumulative)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cumulative[mid] >= n {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

func identity[T any](x T) T { return x }
