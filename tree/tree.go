// SPDX-License-Identifier: MIT
// Package: specimens/tree
//
// tree.go - the shrink tree and its structural combinators.
//
// Contract:
//   - Trees are values; every combinator rebuilds, nothing is mutated.
//   - Forests are lazy. Only the children a consumer pulls are computed.
//   - Children of the zero Tree (or of New(x, nil)) form an empty forest.

package tree

import (
	"iter"

	"github.com/katalvlaran/specimens/sequence"
)

// Tree is a value paired with a lazy forest of simpler alternatives.
type Tree[T any] struct {
	Value    T
	children iter.Seq[Tree[T]]
}

// New builds a tree from a value and its forest. A nil forest is empty.
func New[T any](x T, children iter.Seq[Tree[T]]) Tree[T] {
	return Tree[T]{Value: x, children: children}
}

// Singleton returns a tree without children.
func Singleton[T any](x T) Tree[T] {
	return Tree[T]{Value: x}
}

// Children returns the forest below the root.
func (t Tree[T]) Children() iter.Seq[Tree[T]] {
	if t.children == nil {
		return sequence.Empty[Tree[T]]()
	}
	return t.children
}

// Map applies f to every node.
func Map[T, U any](t Tree[T], f func(T) U) Tree[U] {
	return New(f(t.Value), MapForest(t.Children(), f))
}

// MapForest applies f to every node of every tree in forest.
func MapForest[T, U any](forest iter.Seq[Tree[T]], f func(T) U) iter.Seq[Tree[U]] {
	return sequence.Map(forest, func(c Tree[T]) Tree[U] { return Map(c, f) })
}

// Bind replaces every node x with f(x). The forest of the result lists f's
// own children first, then the original children, each bound recursively.
func Bind[T, U any](t Tree[T], f func(T) Tree[U]) Tree[U] {
	y := f(t.Value)
	bound := sequence.Map(t.Children(), func(c Tree[T]) Tree[U] { return Bind(c, f) })
	return New(y.Value, sequence.Concat(y.Children(), bound))
}

// FilterShrinks drops every subtree whose root fails pred. The root of t is
// kept regardless.
func FilterShrinks[T any](t Tree[T], pred func(T) bool) Tree[T] {
	return New(t.Value, FilterForest(t.Children(), pred))
}

// FilterForest drops every tree whose root fails pred, recursively.
func FilterForest[T any](forest iter.Seq[Tree[T]], pred func(T) bool) iter.Seq[Tree[T]] {
	kept := sequence.Filter(forest, func(c Tree[T]) bool { return pred(c.Value) })
	return sequence.Map(kept, func(c Tree[T]) Tree[T] { return FilterShrinks(c, pred) })
}

// Filter removes every node failing pred. A removed node is replaced by its
// own filtered children, so the result is a forest: empty when nothing
// survives, several trees when the root fails but its children pass.
func Filter[T any](t Tree[T], pred func(T) bool) iter.Seq[Tree[T]] {
	children := sequence.Bind(t.Children(), func(c Tree[T]) iter.Seq[Tree[T]] {
		return Filter(c, pred)
	})
	if !pred(t.Value) {
		return children
	}
	return sequence.Singleton(New(t.Value, children))
}

// Unfold grows a tree from x: node renders a value, expand lists the seeds
// of its children.
func Unfold[S, T any](x S, node func(S) T, expand func(S) iter.Seq[S]) Tree[T] {
	return New(node(x), UnfoldForest(x, node, expand))
}

// UnfoldForest grows the forest below x.
func UnfoldForest[S, T any](x S, node func(S) T, expand func(S) iter.Seq[S]) iter.Seq[Tree[T]] {
	return sequence.Map(expand(x), func(y S) Tree[T] { return Unfold(y, node, expand) })
}

// Fold collapses t bottom-up. foldTree combines a node with its folded
// forest; foldForest combines the lazily folded children.
func Fold[T, A, F any](t Tree[T], foldTree func(T, F) A, foldForest func(iter.Seq[A]) F) A {
	return foldTree(t.Value, FoldForest(t.Children(), foldTree, foldForest))
}

// FoldForest is Fold over a forest.
func FoldForest[T, A, F any](forest iter.Seq[Tree[T]], foldTree func(T, F) A, foldForest func(iter.Seq[A]) F) F {
	return foldForest(sequence.Map(forest, func(c Tree[T]) A { return Fold(c, foldTree, foldForest) }))
}
