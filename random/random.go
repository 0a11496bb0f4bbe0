// SPDX-License-Identifier: MIT
// Package: specimens/random
//
// random.go - Random and its combinators.
//
// Contract:
//   - Running the same Random with equal seeds and sizes yields equal sequences.
//   - Integral splits its seed: the right half is consumed by the draw, the left
//     half is handed back, so the carried-forward stream never correlates with
//     the value just drawn.
//   - Repeat ends only when a run yields nothing.

package random

import (
	"iter"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/seed"
	"github.com/katalvlaran/specimens/sequence"
)

// Production pairs a value with the seed left over after producing it.
type Production[T any] struct {
	Seed  seed.Seed
	Value T
}

// Random produces values from a seed and a size.
type Random[T any] func(s seed.Seed, size numeric.Size) iter.Seq[Production[T]]

// From adapts a plain function into a Random.
func From[T any](f func(seed.Seed, numeric.Size) iter.Seq[Production[T]]) Random[T] {
	return Random[T](f)
}

// Run executes r.
func (r Random[T]) Run(s seed.Seed, size numeric.Size) iter.Seq[Production[T]] {
	return r(s, size)
}

// Repeat turns r into an unbounded stream of draws. Every run starts from the
// seed left over by the previous production.
func (r Random[T]) Repeat() Random[T] {
	return func(s seed.Seed, size numeric.Size) iter.Seq[Production[T]] {
		return func(yield func(Production[T]) bool) {
			cur := s
			for {
				produced := false
				for p := range r(cur, size) {
					produced = true
					cur = p.Seed
					if !yield(p) {
						return
					}
				}
				if !produced {
					return
				}
			}
		}
	}
}

// Constant always yields x with the seed unchanged.
func Constant[T any](x T) Random[T] {
	return func(s seed.Seed, _ numeric.Size) iter.Seq[Production[T]] {
		return sequence.Singleton(Production[T]{Seed: s, Value: x})
	}
}

// Infinite yields x without end, always with the seed unchanged.
func Infinite[T any](x T) Random[T] {
	return func(s seed.Seed, _ numeric.Size) iter.Seq[Production[T]] {
		return sequence.Map(sequence.Infinite(), func(uint64) Production[T] {
			return Production[T]{Seed: s, Value: x}
		})
	}
}

// Integral draws one value within rng's bounds at the given size.
func Integral[N any](num numeric.Numeric[N], rng numeric.Range[N]) Random[N] {
	return func(s seed.Seed, size numeric.Size) iter.Seq[Production[N]] {
		return func(yield func(Production[N]) bool) {
			lo, hi := rng.Bounds(size)
			left, right := s.Split()
			v, _ := num.Random(right, lo, hi)
			yield(Production[N]{Seed: left, Value: v})
		}
	}
}

// Map transforms every produced value. Seeds are untouched.
func Map[T, U any](r Random[T], f func(T) U) Random[U] {
	return func(s seed.Seed, size numeric.Size) iter.Seq[Production[U]] {
		return sequence.Map(r(s, size), func(p Production[T]) Production[U] {
			return Production[U]{Seed: p.Seed, Value: f(p.Value)}
		})
	}
}

// Bind runs r with the original seed, then runs f(x) with the seed each
// production of r left over.
func Bind[T, U any](r Random[T], f func(T) Random[U]) Random[U] {
	return Expand(r, func(s seed.Seed, size numeric.Size, x T) iter.Seq[Production[U]] {
		return f(x)(s, size)
	})
}

// Expand replaces every production of r with the productions f derives from
// it. f receives the production's left-over seed.
func Expand[T, U any](r Random[T], f func(seed.Seed, numeric.Size, T) iter.Seq[Production[U]]) Random[U] {
	return func(s seed.Seed, size numeric.Size) iter.Seq[Production[U]] {
		return sequence.Bind(r(s, size), func(p Production[T]) iter.Seq[Production[U]] {
			return f(p.Seed, size, p.Value)
		})
	}
}

// Spread replaces every produced value with the values f derives from it, all
// paired with the seed of the production they came from.
func Spread[T, U any](r Random[T], f func(T) iter.Seq[U]) Random[U] {
	return Expand(r, func(s seed.Seed, _ numeric.Size, x T) iter.Seq[Production[U]] {
		return sequence.Map(f(x), func(y U) Production[U] {
			return Production[U]{Seed: s, Value: y}
		})
	})
}
