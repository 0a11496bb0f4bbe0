// SPDX-License-Identifier: MIT
// Package: specimens/specimens
//
// combinators.go - map, bind, filter and the combinations derived from them.
//
// Notes:
//   - Bind runs the continuation of every node of the original tree with the
//     seed the original draw left over, so shrinking the first stage replays
//     the second stage under the same randomness.
//   - A shrink branch whose continuation keeps rejecting is cut after
//     DefaultExhaustionThreshold consecutive rejections.
//   - Filter emits one Rejected per failed retry. Because retries continue the
//     underlying draw stream, chained filters and a single conjoined filter
//     yield identical streams.

package specimens

import (
	"iter"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/outcome"
	"github.com/katalvlaran/specimens/random"
	"github.com/katalvlaran/specimens/seed"
	"github.com/katalvlaran/specimens/sequence"
	"github.com/katalvlaran/specimens/tree"
)

// Map applies f to every value in every tree. Rejections pass through.
func Map[T, U any](g Generator[T], f func(T) U) Generator[U] {
	return FromRandom(random.Map(g.Random(), func(o outcome.Outcome[tree.Tree[T]]) outcome.Outcome[tree.Tree[U]] {
		return outcome.Map(o, func(t tree.Tree[T]) tree.Tree[U] { return tree.Map(t, f) })
	}))
}

// Bind draws x from g and then draws from f(x). The shrinks of the result
// are f(x)'s own shrinks followed by the shrinks of x, each re-bound through f.
func Bind[T, U any](g Generator[T], f func(T) Generator[U]) Generator[U] {
	return FromRandom(random.Expand(g.Random(), func(s seed.Seed, size numeric.Size, o outcome.Outcome[tree.Tree[T]]) iter.Seq[Draw[U]] {
		t, ok := o.Get()
		if !ok {
			return sequence.Singleton(Draw[U]{Seed: s, Value: outcome.Reject[tree.Tree[U]]()})
		}

		bindNode := func(x T, boundChildren iter.Seq[tree.Tree[U]]) iter.Seq[Draw[U]] {
			return sequence.Map(f(x).Run(s, size), func(d Draw[U]) Draw[U] {
				return Draw[U]{Seed: d.Seed, Value: outcome.Map(d.Value, func(y tree.Tree[U]) tree.Tree[U] {
					return tree.New(y.Value, sequence.Concat(y.Children(), boundChildren))
				})}
			})
		}
		bindForest := func(children iter.Seq[iter.Seq[Draw[U]]]) iter.Seq[tree.Tree[U]] {
			return sequence.Bind(children, acceptedTrees[U])
		}
		return tree.Fold(t, bindNode, bindForest)
	}))
}

// acceptedTrees keeps the accepted trees of a continuation's draws, giving up
// after DefaultExhaustionThreshold rejections in a row.
func acceptedTrees[U any](draws iter.Seq[Draw[U]]) iter.Seq[tree.Tree[U]] {
	return func(yield func(tree.Tree[U]) bool) {
		rejected := 0
		for d := range draws {
			t, ok := d.Value.Get()
			if !ok {
				rejected++
				if rejected >= DefaultExhaustionThreshold {
					return
				}
				continue
			}
			rejected = 0
			if !yield(t) {
				return
			}
		}
	}
}

// Filter keeps values satisfying pred. A failing candidate is reported as
// Rejected and followed by fresh draws continuing from its seed, up to and
// including the first one that passes. Shrinks of accepted trees are pruned
// to those satisfying pred.
func (g Generator[T]) Filter(pred func(T) bool) Generator[T] {
	check := func(d Draw[T]) Draw[T] {
		return Draw[T]{Seed: d.Seed, Value: outcome.Bind(d.Value, func(t tree.Tree[T]) outcome.Outcome[tree.Tree[T]] {
			if !pred(t.Value) {
				return outcome.Reject[tree.Tree[T]]()
			}
			return outcome.Accept(tree.FilterShrinks(t, pred))
		})}
	}
	rejected := func(d Draw[T]) bool { return d.Value.Rejected() }

	return FromRandom(random.Expand(g.Random(), func(s seed.Seed, size numeric.Size, o outcome.Outcome[tree.Tree[T]]) iter.Seq[Draw[T]] {
		first := Draw[T]{Seed: s, Value: o}
		if o.Rejected() {
			return sequence.Singleton(first)
		}
		retries := g.Random().Repeat().Run(s, size)
		return sequence.TakeWhileInclusive(sequence.Map(sequence.Cons(first, retries), check), rejected)
	}))
}

// NoShrink drops every shrink.
func (g Generator[T]) NoShrink() Generator[T] {
	return FromRandom(random.Map(g.Random(), func(o outcome.Outcome[tree.Tree[T]]) outcome.Outcome[tree.Tree[T]] {
		return outcome.Map(o, func(t tree.Tree[T]) tree.Tree[T] { return tree.Singleton(t.Value) })
	}))
}

// Pair holds the two values of a Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip draws from a, then from b.
func Zip[A, B any](a Generator[A], b Generator[B]) Generator[Pair[A, B]] {
	return Map2(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{First: x, Second: y} })
}

// Map2 combines one draw of each generator.
func Map2[A, B, R any](a Generator[A], b Generator[B], f func(A, B) R) Generator[R] {
	return Bind(a, func(x A) Generator[R] {
		return Map(b, func(y B) R { return f(x, y) })
	})
}

// Map3 combines one draw of each generator.
func Map3[A, B, C, R any](a Generator[A], b Generator[B], c Generator[C], f func(A, B, C) R) Generator[R] {
	return Bind(a, func(x A) Generator[R] {
		return Map2(b, c, func(y B, z C) R { return f(x, y, z) })
	})
}

// Map4 combines one draw of each generator.
func Map4[A, B, C, D, R any](a Generator[A], b Generator[B], c Generator[C], d Generator[D], f func(A, B, C, D) R) Generator[R] {
	return Bind(a, func(x A) Generator[R] {
		return Map3(b, c, d, func(y B, z C, w D) R { return f(x, y, z, w) })
	})
}

// Concat splits the seed and yields every draw of a (left half) followed by
// every draw of b (right half).
func Concat[T any](a, b Generator[T]) Generator[T] {
	return FromRandom(func(s seed.Seed, size numeric.Size) iter.Seq[Draw[T]] {
		left, right := s.Split()
		return sequence.Concat(a.Run(left, size), b.Run(right, size))
	})
}
