// SPDX-License-Identifier: MIT
// Package: specimens/sequence
//
// sequence.go - constructors and combinators over iter.Seq.
//
// Notes:
//   - Take never pulls the element after its n-th, so it is safe on
//     sequences whose later elements are expensive or unbounded.
//   - Collect must only be called on finite sequences.

package sequence

import "iter"

// Empty returns a sequence with no elements.
func Empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}

// Singleton returns a sequence holding exactly x.
func Singleton[T any](x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(x)
	}
}

// FromSlice yields the elements of xs in order.
func FromSlice[T any](xs []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}

// Infinite yields 0, 1, 2, ... without end.
func Infinite() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := uint64(0); ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Unfold yields x, then step(x), then step(step(x)), ... until step
// reports false.
func Unfold[T any](x T, step func(T) (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := x
		for {
			if !yield(cur) {
				return
			}
			next, ok := step(cur)
			if !ok {
				return
			}
			cur = next
		}
	}
}

// Map applies f lazily to every element.
func Map[T, U any](s iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for x := range s {
			if !yield(f(x)) {
				return
			}
		}
	}
}

// Filter keeps the elements satisfying pred.
func Filter[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s {
			if pred(x) && !yield(x) {
				return
			}
		}
	}
}

// Bind maps every element to a sequence and concatenates the results.
func Bind[T, U any](s iter.Seq[T], f func(T) iter.Seq[U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for x := range s {
			for y := range f(x) {
				if !yield(y) {
					return
				}
			}
		}
	}
}

// Flatten concatenates a sequence of sequences.
func Flatten[T any](ss iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return Bind(ss, func(s iter.Seq[T]) iter.Seq[T] { return s })
}

// Concat yields every element of each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range seqs {
			for x := range s {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// Cons prepends head to s.
func Cons[T any](head T, s iter.Seq[T]) iter.Seq[T] {
	return Concat(Singleton(head), s)
}

// Take yields at most n elements. It stops pulling from s as soon as the
// n-th element has been yielded.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for x := range s {
			if !yield(x) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// Skip drops the first n elements.
func Skip[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for x := range s {
			if i < n {
				i++
				continue
			}
			if !yield(x) {
				return
			}
		}
	}
}

// TakeWhile yields elements while pred holds.
func TakeWhile[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s {
			if !pred(x) || !yield(x) {
				return
			}
		}
	}
}

// TakeWhileInclusive yields elements while pred holds, plus the first
// element for which it does not.
func TakeWhileInclusive[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s {
			if !yield(x) || !pred(x) {
				return
			}
		}
	}
}

// Tap calls f on each element as it passes through.
func Tap[T any](s iter.Seq[T], f func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s {
			f(x)
			if !yield(x) {
				return
			}
		}
	}
}

// First returns the first element of s, if any.
func First[T any](s iter.Seq[T]) (T, bool) {
	for x := range s {
		return x, true
	}
	var zero T
	return zero, false
}

// IsEmpty reports whether s yields nothing. It pulls at most one element.
func IsEmpty[T any](s iter.Seq[T]) bool {
	_, ok := First(s)
	return !ok
}

// Collect realizes s into a slice. s must be finite.
func Collect[T any](s iter.Seq[T]) []T {
	var out []T
	for x := range s {
		out = append(out, x)
	}
	return out
}
