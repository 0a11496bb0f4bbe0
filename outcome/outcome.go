// SPDX-License-Identifier: MIT
// Package: specimens/outcome
//
// outcome.go - the Accepted/Rejected tagged value.

package outcome

import "fmt"

// Outcome is either Accepted(x) or Rejected. The zero value is Rejected.
type Outcome[T any] struct {
	value    T
	accepted bool
}

// Accept wraps x as an accepted outcome.
func Accept[T any](x T) Outcome[T] {
	return Outcome[T]{value: x, accepted: true}
}

// Reject returns the rejected outcome.
func Reject[T any]() Outcome[T] {
	return Outcome[T]{}
}

// Accepted reports whether o carries a value.
func (o Outcome[T]) Accepted() bool { return o.accepted }

// Rejected reports whether o is Rejected.
func (o Outcome[T]) Rejected() bool { return !o.accepted }

// Get returns the accepted value and true, or the zero value and false.
func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.accepted
}

// MustGet returns the accepted value and panics with ErrNotAccepted otherwise.
func (o Outcome[T]) MustGet() T {
	if !o.accepted {
		panic(ErrNotAccepted)
	}
	return o.value
}

func (o Outcome[T]) String() string {
	if !o.accepted {
		return "Rejected"
	}
	return fmt.Sprintf("Accepted(%v)", o.value)
}

// Map applies f to an accepted value. Rejected passes through.
func Map[T, U any](o Outcome[T], f func(T) U) Outcome[U] {
	if !o.accepted {
		return Reject[U]()
	}
	return Accept(f(o.value))
}

// Bind chains an outcome-producing step. Rejected short-circuits.
func Bind[T, U any](o Outcome[T], f func(T) Outcome[U]) Outcome[U] {
	if !o.accepted {
		return Reject[U]()
	}
	return f(o.value)
}

// Unwrap folds o into a single value.
func Unwrap[T, R any](o Outcome[T], onAccepted func(T) R, onRejected func() R) R {
	if o.accepted {
		return onAccepted(o.value)
	}
	return onRejected()
}
