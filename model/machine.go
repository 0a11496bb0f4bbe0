// SPDX-License-Identifier: MIT
// Package: specimens/model
//
// machine.go - Scan and FromStateMachine.
//
// Contract:
//   - One draw per step. A run of the generator is one trajectory and ends
//     only when next reports termination.
//   - Construction is lazy: the step after x is built only when x is drawn.

package model

import "github.com/katalvlaran/specimens/specimens"

// Scan threads a value through next: every drawn x is emitted and becomes
// the input of the following step. When next reports false the trajectory
// ends there, without a rejection.
func Scan[T any](initial T, next func(T) (specimens.Generator[T], bool)) specimens.Generator[T] {
	g, ok := next(initial)
	if !ok {
		return specimens.Exhausted[T]()
	}
	return specimens.Bind(g, func(x T) specimens.Generator[T] {
		return specimens.Concat(specimens.Constant(x), Scan(x, next))
	})
}

// Step is one transition of a trajectory: the state reached and the event
// that produced it.
type Step[S, A any] struct {
	State S
	Event A
}

// FromStateMachine generates trajectories of a state machine. generateAction
// proposes the actions legal in a state, or false to stop; transition applies
// one. The initial state itself is not emitted.
func FromStateMachine[S, A any](
	initial S,
	transition func(S, A) S,
	generateAction func(S) (specimens.Generator[A], bool),
) specimens.Generator[Step[S, A]] {
	return Scan(Step[S, A]{State: initial}, func(prev Step[S, A]) (specimens.Generator[Step[S, A]], bool) {
		actions, ok := generateAction(prev.State)
		if !ok {
			return specimens.Generator[Step[S, A]]{}, false
		}
		return specimens.Map(actions, func(a A) Step[S, A] {
			return Step[S, A]{State: transition(prev.State, a), Event: a}
		}), true
	})
}
