// SPDX-License-Identifier: MIT
// Package: specimens/tree
//
// evaluate.go - bounded, eager snapshots of lazy trees.

package tree

import (
	"fmt"
	"strings"
)

// Node is a realized tree.
type Node[T any] struct {
	Value    T
	Children []Node[T]
}

// Evaluate realizes t down to maxDepth levels below the root. A negative
// maxDepth realizes everything, which only terminates for finite trees.
func Evaluate[T any](t Tree[T], maxDepth int) Node[T] {
	n := Node[T]{Value: t.Value}
	if maxDepth == 0 {
		return n
	}
	for c := range t.Children() {
		n.Children = append(n.Children, Evaluate(c, maxDepth-1))
	}
	return n
}

// Values lists the node values in depth-first pre-order.
func (n Node[T]) Values() []T {
	out := []T{n.Value}
	for _, c := range n.Children {
		out = append(out, c.Values()...)
	}
	return out
}

// String renders a leaf as its value and any other node as [value,[children...]].
//
//	[5,[0,[2,[0,[1,[0]]]],[1,[0]]]]
func (n Node[T]) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n Node[T]) write(b *strings.Builder) {
	if len(n.Children) == 0 {
		fmt.Fprint(b, n.Value)
		return
	}
	fmt.Fprintf(b, "[%v,[", n.Value)
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte(',')
		}
		c.write(b)
	}
	b.WriteString("]]")
}
