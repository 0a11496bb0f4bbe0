// SPDX-License-Identifier: MIT
// Package: specimens/specimens
//
// iterate.go - entry points that pull values out of a generator.
//
// Contract:
//   - GenerateSpecimens yields at most count specimens. The stream ends with
//     one Exhausted specimen when the exhaustion threshold is reached or when
//     the generator stops producing.
//   - GenerateTrees and Generate yield at most count accepted values and stop
//     early on exhaustion.
//   - Sample* are the same entry points seeded from wall-clock entropy.

package specimens

import (
	"iter"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/outcome"
	"github.com/katalvlaran/specimens/seed"
	"github.com/katalvlaran/specimens/sequence"
	"github.com/katalvlaran/specimens/tree"
)

// treeSpecimens is the guarded, unbounded stream of tree specimens.
func (g Generator[T]) treeSpecimens(s seed.Seed, size numeric.Size, threshold int) iter.Seq[outcome.Specimen[tree.Tree[T]]] {
	outcomes := sequence.Map(g.Random().Repeat().Run(s, size), func(d Draw[T]) outcome.Outcome[tree.Tree[T]] {
		return d.Value
	})
	guarded := outcome.Guarded(outcomes, threshold)

	return func(yield func(outcome.Specimen[tree.Tree[T]]) bool) {
		for sp := range guarded {
			if !yield(sp) || sp.IsExhausted() {
				return
			}
		}
		// the generator stopped producing
		yield(outcome.Exhausted[tree.Tree[T]]())
	}
}

// GenerateSpecimens yields the raw stream of count specimens: accepted
// values, rejections, and a final Exhausted marker if the generator gives
// out. Only WithExhaustionThreshold is consulted among opts.
func (g Generator[T]) GenerateSpecimens(s seed.Seed, size numeric.Size, count int, opts ...Option) iter.Seq[outcome.Specimen[T]] {
	cfg := newConfig(opts...)
	roots := sequence.Map(g.treeSpecimens(s, size, cfg.threshold), func(sp outcome.Specimen[tree.Tree[T]]) outcome.Specimen[T] {
		return outcome.MapSpecimen(sp, func(t tree.Tree[T]) T { return t.Value })
	})
	return sequence.Take(roots, count)
}

// GenerateTrees yields up to count accepted shrink trees.
func (g Generator[T]) GenerateTrees(s seed.Seed, size numeric.Size, count int, opts ...Option) iter.Seq[tree.Tree[T]] {
	cfg := newConfig(opts...)
	stream := g.treeSpecimens(s, size, cfg.threshold)
	accepted := func(yield func(tree.Tree[T]) bool) {
		for sp := range stream {
			if sp.IsExhausted() {
				return
			}
			if t, ok := sp.Value(); ok && !yield(t) {
				return
			}
		}
	}
	return sequence.Take(accepted, count)
}

// Generate yields up to count accepted values.
func (g Generator[T]) Generate(s seed.Seed, size numeric.Size, count int, opts ...Option) iter.Seq[T] {
	return sequence.Map(g.GenerateTrees(s, size, count, opts...), func(t tree.Tree[T]) T { return t.Value })
}

// SampleSpecimens is GenerateSpecimens with a spawned seed.
func (g Generator[T]) SampleSpecimens(size numeric.Size, count int, opts ...Option) iter.Seq[outcome.Specimen[T]] {
	return g.GenerateSpecimens(seed.Spawn(), size, count, opts...)
}

// SampleTrees is GenerateTrees with a spawned seed.
func (g Generator[T]) SampleTrees(size numeric.Size, count int, opts ...Option) iter.Seq[tree.Tree[T]] {
	return g.GenerateTrees(seed.Spawn(), size, count, opts...)
}

// Sample is Generate with a spawned seed.
func (g Generator[T]) Sample(size numeric.Size, count int, opts ...Option) iter.Seq[T] {
	return g.Generate(seed.Spawn(), size, count, opts...)
}
