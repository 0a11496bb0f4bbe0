package specimens_test

import (
	"iter"

	"github.com/katalvlaran/specimens/outcome"
	"github.com/katalvlaran/specimens/seed"
	"github.com/katalvlaran/specimens/sequence"
	"github.com/katalvlaran/specimens/specimens"
	"github.com/katalvlaran/specimens/tree"
)

// testSize mirrors the size the engine's own defaults use.
const testSize = specimens.DefaultSize

// fixedSeed always draws n (clamped to the requested range) and splits into
// copies of itself, which pins every draw of a composition to a known value.
type fixedSeed struct{ n int64 }

func (s fixedSeed) NextInt(lo, hi int64) (int64, seed.Seed) {
	return min(max(s.n, lo), hi), s
}

func (s fixedSeed) NextFloat() (float64, seed.Seed) { return 0, s }

func (s fixedSeed) Split() (seed.Seed, seed.Seed) { return s, s }

// firstTree evaluates the first accepted tree of g under s.
func firstTree[T any](g specimens.Generator[T], s seed.Seed) tree.Node[T] {
	t, ok := sequence.First(g.GenerateTrees(s, testSize, 1))
	if !ok {
		panic("generator produced no accepted tree")
	}
	return tree.Evaluate(t, -1)
}

// shrinkValues lists the direct shrinks of a realized tree.
func shrinkValues[T any](n tree.Node[T]) []T {
	out := make([]T, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, c.Value)
	}
	return out
}

func kinds[T any](xs iter.Seq[outcome.Specimen[T]]) []outcome.Kind {
	return sequence.Collect(sequence.Map(xs, outcome.Specimen[T].Kind))
}

func repeatKind(k outcome.Kind, n int) []outcome.Kind {
	out := make([]outcome.Kind, n)
	for i := range out {
		out[i] = k
	}
	return out
}
