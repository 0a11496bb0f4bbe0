// SPDX-License-Identifier: MIT
// Package: specimens/outcome
//
// specimen.go - outcomes plus the out-of-band Exhausted marker.

package outcome

import "fmt"

// Kind discriminates the variants of a Specimen.
type Kind uint8

const (
	// KindRejected is a discarded draw.
	KindRejected Kind = iota
	// KindAccepted carries a value.
	KindAccepted
	// KindExhausted ends a stream.
	KindExhausted
)

func (k Kind) String() string {
	switch k {
	case KindAccepted:
		return "Accepted"
	case KindRejected:
		return "Rejected"
	case KindExhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Specimen is an Outcome or the Exhausted marker.
type Specimen[T any] struct {
	kind  Kind
	value T
}

// FromOutcome lifts an outcome into a specimen.
func FromOutcome[T any](o Outcome[T]) Specimen[T] {
	if o.accepted {
		return Specimen[T]{kind: KindAccepted, value: o.value}
	}
	return Specimen[T]{kind: KindRejected}
}

// Exhausted returns the terminal marker.
func Exhausted[T any]() Specimen[T] {
	return Specimen[T]{kind: KindExhausted}
}

func (s Specimen[T]) Kind() Kind { return s.kind }
func (s Specimen[T]) IsAccepted() bool { return s.kind == KindAccepted }
func (s Specimen[T]) IsRejected() bool { return s.kind == KindRejected }
func (s Specimen[T]) IsExhausted() bool { return s.kind == KindExhausted }

// Value returns the accepted value, if any.
func (s Specimen[T]) Value() (T, bool) {
	return s.value, s.kind == KindAccepted
}

// Outcome converts back to an Outcome. It reports false for Exhausted.
func (s Specimen[T]) Outcome() (Outcome[T], bool) {
	switch s.kind {
	case KindAccepted:
		return Accept(s.value), true
	case KindRejected:
		return Reject[T](), true
	default:
		return Outcome[T]{}, false
	}
}

func (s Specimen[T]) String() string {
	if s.kind == KindAccepted {
		return fmt.Sprintf("Accepted(%v)", s.value)
	}
	return s.kind.String()
}

// MapSpecimen applies f to an accepted value. Other kinds pass through.
func MapSpecimen[T, U any](s Specimen[T], f func(T) U) Specimen[U] {
	if s.kind == KindAccepted {
		return Specimen[U]{kind: KindAccepted, value: f(s.value)}
	}
	return Specimen[U]{kind: s.kind}
}
