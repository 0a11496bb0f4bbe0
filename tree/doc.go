// Package tree implements shrink trees: a value paired with a lazy forest of
// progressively simpler alternatives.
//
// The forest is an iter.Seq, so a tree may be infinite in principle; callers
// only ever realize the part they walk. Evaluate takes a depth-bounded
// snapshot for inspection and tests.
//
//	t := tree.Unfold(4, func(n int) int { return n }, shrink.Towards(numeric.Int, 0))
//	fmt.Println(tree.Evaluate(t, -1)) // [4,[0,[2,[0,[1,[0]]]],[1,[0]]]]
package tree
