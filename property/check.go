// SPDX-License-Identifier: MIT
// Package: specimens/property
//
// check.go - property runner with greedy shrinking.
//
// Contract:
//   - Trials counts accepted values checked, including the failing one.
//   - Shrinks counts moves towards a smaller failing value; the candidate
//     budget (WithMaxShrinks) counts every shrink evaluated.
//   - A generator that exhausts after some passing trials still passes, with
//     Exhausted set. One that exhausts before any trial sets Err.

package property

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/seed"
	"github.com/katalvlaran/specimens/specimens"
	"github.com/katalvlaran/specimens/tree"
)

// Report is the result of Check.
type Report[T any] struct {
	Passed    bool
	Trials    int
	Seed      int64
	Size      numeric.Size
	Exhausted bool
	Err       error

	// Original is the first value that falsified the property.
	Original T
	// Counterexample is the smallest failing value shrinking reached.
	Counterexample T
	Shrinks        int
}

// String summarizes the report in one line.
func (r Report[T]) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("property not checked: %v (seed=%d)", r.Err, r.Seed)
	case r.Passed:
		return fmt.Sprintf("property passed %d trials (seed=%d, size=%d)", r.Trials, r.Seed, r.Size)
	default:
		return fmt.Sprintf("property falsified after %d trials (seed=%d, size=%d): counterexample %+v, shrunk %d times from %+v; rerun with %s=%d",
			r.Trials, r.Seed, r.Size, r.Counterexample, r.Shrinks, r.Original, SeedEnv, r.Seed)
	}
}

// Check runs prop over values drawn from g and, on failure, shrinks the
// falsifying value.
func Check[T any](g specimens.Generator[T], prop func(T) bool, opts ...Option) Report[T] {
	cfg := newConfig(opts...)
	log := cfg.logger.WithFields(logrus.Fields{"seed": cfg.seed, "size": cfg.size})
	r := Report[T]{Seed: cfg.seed, Size: cfg.size}

	for t := range g.GenerateTrees(seed.New(cfg.seed), cfg.size, cfg.trials) {
		r.Trials++
		if prop(t.Value) {
			continue
		}
		r.Original = t.Value
		log.WithField("trial", r.Trials).Warnf("property falsified by %+v", t.Value)
		r.Counterexample, r.Shrinks = minimize(t, prop, cfg.maxShrinks, log)
		log.WithField("shrinks", r.Shrinks).Warnf("minimal counterexample %+v", r.Counterexample)
		return r
	}

	r.Passed = true
	if r.Trials < cfg.trials {
		r.Exhausted = true
		log.WithField("trials", r.Trials).Warn("generator exhausted")
	}
	if r.Trials == 0 {
		r.Passed = false
		r.Err = fmt.Errorf("%w (seed=%d)", ErrGeneratorExhausted, cfg.seed)
	}
	return r
}

// minimize follows the first failing shrink of each node until none fails or
// budget candidates have been evaluated.
func minimize[T any](t tree.Tree[T], prop func(T) bool, budget int, log logrus.FieldLogger) (T, int) {
	current, moves, tried := t, 0, 0
	for tried < budget {
		next, found := current, false
		for c := range current.Children() {
			tried++
			if !prop(c.Value) {
				next, found = c, true
				break
			}
			if tried >= budget {
				break
			}
		}
		if !found {
			break
		}
		current = next
		moves++
		log.WithField("shrinks", moves).Debugf("shrunk to %+v", current.Value)
	}
	return current.Value, moves
}

// For runs Check and fails tb with the report when the property does not
// hold.
func For[T any](tb testing.TB, g specimens.Generator[T], prop func(T) bool, opts ...Option) Report[T] {
	tb.Helper()
	r := Check(g, prop, opts...)
	if !r.Passed {
		tb.Errorf("%s", r)
	}
	return r
}
