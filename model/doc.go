// Package model builds generators of state-machine trajectories.
//
// A trajectory starts from an initial state. At every step the caller
// decides which actions are legal for the current state, one of them is
// drawn, and a transition function folds it into the next state. Each step
// of the trajectory is one draw of the resulting generator, so
// Generate(seed, size, 100) yields the first hundred steps.
//
// Three layers are offered:
//   - Scan threads any value through a per-value generator.
//   - FromStateMachine pairs each reached state with the action that led to it.
//   - FromReducer picks actions from an ordered list of named definitions,
//     each reporting Applicable(weight, gen), NotApplicable or Terminate.
//
// Shrinking works per step: a step's shrinks replace its action and replay
// the rest of the trajectory from there.
package model
