// SPDX-License-Identifier: MIT
// Package: specimens/outcome
//
// stream.go - pull-style access to a specimen sequence.

package outcome

import "iter"

// Stream pulls specimens one at a time. It is not safe for concurrent use.
type Stream[T any] struct {
	next      func() (Specimen[T], bool)
	stop      func()
	exhausted bool
}

// Pull starts pulling from seq. Callers must call Stop when they abandon the
// stream before it ends.
func Pull[T any](seq iter.Seq[Specimen[T]]) *Stream[T] {
	next, stop := iter.Pull(seq)
	return &Stream[T]{next: next, stop: stop}
}

// Next returns the next specimen, or false once the source has ended.
// Calling Next after it returned an Exhausted specimen panics with
// ErrExhaustedStream.
func (s *Stream[T]) Next() (Specimen[T], bool) {
	if s.exhausted {
		panic(ErrExhaustedStream)
	}
	sp, ok := s.next()
	if ok && sp.IsExhausted() {
		s.exhausted = true
		s.stop()
	}
	return sp, ok
}

// Exhausted reports whether the stream has delivered its Exhausted marker.
func (s *Stream[T]) Exhausted() bool { return s.exhausted }

// Stop releases the underlying iterator. It is safe to call more than once.
func (s *Stream[T]) Stop() { s.stop() }
