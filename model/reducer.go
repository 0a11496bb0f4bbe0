// SPDX-License-Identifier: MIT
// Package: specimens/model
//
// reducer.go - reducer-driven trajectories over named action definitions.
//
// Per state, every definition is asked for a Transition, in slice order:
//   - NotApplicable definitions are dropped (so is a nil Fn).
//   - A single Terminate ends the trajectory.
//   - The applicable ones are picked by weight, and the drawn action is
//     folded through the reducer.
// Panics with ErrNoApplicableAction when nothing applies and nothing
// terminates.

package model

import (
	"fmt"

	"github.com/katalvlaran/specimens/specimens"
)

// TransitionKind tags a Transition.
type TransitionKind int

const (
	// KindNotApplicable means the action cannot be taken from this state.
	KindNotApplicable TransitionKind = iota
	// KindApplicable carries a weight and an action generator.
	KindApplicable
	// KindTerminate asks for the trajectory to stop here.
	KindTerminate
)

// String returns the kind name.
func (k TransitionKind) String() string {
	switch k {
	case KindApplicable:
		return "applicable"
	case KindTerminate:
		return "terminate"
	default:
		return "not-applicable"
	}
}

// Transition is a definition's verdict for one state. The zero value is
// NotApplicable.
type Transition[A any] struct {
	kind   TransitionKind
	weight int
	gen    specimens.Generator[A]
}

// Applicable offers gen with the given relative weight.
// Panics with specimens.ErrInvalidWeight if weight < 1.
func Applicable[A any](weight int, gen specimens.Generator[A]) Transition[A] {
	if weight < 1 {
		panic(fmt.Errorf("%w: got %d", specimens.ErrInvalidWeight, weight))
	}
	return Transition[A]{kind: KindApplicable, weight: weight, gen: gen}
}

// NotApplicable rules the action out for this state.
func NotApplicable[A any]() Transition[A] { return Transition[A]{} }

// Terminate ends the trajectory at this state.
func Terminate[A any]() Transition[A] { return Transition[A]{kind: KindTerminate} }

// Kind reports which variant t is.
func (t Transition[A]) Kind() TransitionKind { return t.kind }

// Definition names one kind of action and decides, per state, whether and
// how it can be generated.
type Definition[S, A any] struct {
	Name string
	Fn   func(S) Transition[A]
}

// FromReducer generates trajectories of reducer, starting at initial, with
// actions chosen among defs. Definitions are consulted in order, so a fixed
// seed always yields the same trajectory.
func FromReducer[S, A any](initial S, reducer func(S, A) S, defs []Definition[S, A]) specimens.Generator[Step[S, A]] {
	defs = append([]Definition[S, A](nil), defs...)
	return FromStateMachine(initial, reducer, func(state S) (specimens.Generator[A], bool) {
		return chooseAction(defs, state)
	})
}

func chooseAction[S, A any](defs []Definition[S, A], state S) (specimens.Generator[A], bool) {
	var choices []specimens.Weighted[A]
	for _, d := range defs {
		if d.Fn == nil {
			continue
		}
		t := d.Fn(state)
		switch t.kind {
		case KindTerminate:
			return specimens.Generator[A]{}, false
		case KindApplicable:
			choices = append(choices, specimens.Weighted[A]{Weight: t.weight, Gen: t.gen})
		}
	}
	if len(choices) == 0 {
		panic(fmt.Errorf("%w: state %+v, definitions %v", ErrNoApplicableAction, state, names(defs)))
	}
	return specimens.PickWeighted(choices), true
}

func names[S, A any](defs []Definition[S, A]) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.Name
	}
	return out
}
