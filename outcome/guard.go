// SPDX-License-Identifier: MIT
// Package: specimens/outcome
//
// guard.go - exhaustion detection over a stream of outcomes.
//
// Contract:
//   - A Guard sees every outcome after it has been handed to the consumer.
//   - Guarded yields exactly one Exhausted marker, right after the outcome that
//     tripped the guard, and then stops pulling from its source.
//   - Each range over a Guarded sequence starts with a fresh guard.

package outcome

import (
	"fmt"
	"iter"
)

// Guard decides when a stream of outcomes should be considered exhausted.
type Guard interface {
	// Observe records one outcome.
	Observe(accepted bool)
	// Exhausted reports whether the stream should stop.
	Exhausted() bool
}

// FollowingConsecutiveRejections returns a Guard that trips once n outcomes in
// a row were rejected. Any accepted outcome resets the count.
// Panics with ErrInvalidThreshold if n < 1.
func FollowingConsecutiveRejections(n int) Guard {
	mustThreshold(n)
	return &consecutiveRejections{max: n}
}

type consecutiveRejections struct {
	max, count int
}

func (g *consecutiveRejections) Observe(accepted bool) {
	if accepted {
		g.count = 0
		return
	}
	g.count++
}

func (g *consecutiveRejections) Exhausted() bool {
	return g.count >= g.max
}

// Guarded lifts outcomes into specimens, appending the Exhausted marker once
// threshold consecutive rejections have been seen.
// Panics with ErrInvalidThreshold if threshold < 1.
func Guarded[T any](outcomes iter.Seq[Outcome[T]], threshold int) iter.Seq[Specimen[T]] {
	mustThreshold(threshold)
	return func(yield func(Specimen[T]) bool) {
		g := FollowingConsecutiveRejections(threshold)
		for o := range outcomes {
			if !yield(FromOutcome(o)) {
				return
			}
			g.Observe(o.accepted)
			if g.Exhausted() {
				yield(Exhausted[T]())
				return
			}
		}
	}
}

func mustThreshold(n int) {
	if n < 1 {
		panic(fmt.Errorf("%w: got %d", ErrInvalidThreshold, n))
	}
}
