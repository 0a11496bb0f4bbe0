package specimens_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/outcome"
	"github.com/katalvlaran/specimens/seed"
	"github.com/katalvlaran/specimens/sequence"
	"github.com/katalvlaran/specimens/specimens"
	"github.com/katalvlaran/specimens/tree"
)

func zeroToTen() specimens.Generator[int] {
	return specimens.Integer(numeric.Constant(numeric.Int, 0, 10))
}

func TestMap_Values(t *testing.T) {
	s := seed.Spawn()
	plain := sequence.Collect(zeroToTen().Generate(s, testSize, 10))
	mapped := sequence.Collect(specimens.Map(zeroToTen(), strconv.Itoa).Generate(s, testSize, 10))

	require.Len(t, mapped, len(plain))
	for i := range plain {
		assert.Equal(t, strconv.Itoa(plain[i]), mapped[i])
	}
}

func TestMap_Shrinks(t *testing.T) {
	g := specimens.Map(zeroToTen(), func(x int) int { return x + 1 })
	n := firstTree(g, fixedSeed{n: 10})
	assert.Equal(t, 11, n.Value)
	assert.Equal(t, []int{1, 6, 3, 2}, shrinkValues(n))
}

func TestFilter_AcceptedPassPredicate(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	for x := range zeroToTen().Filter(even).Sample(testSize, 100) {
		require.True(t, even(x), "got %d", x)
	}
}

func TestFilter_ShrinksArePruned(t *testing.T) {
	g := zeroToTen().Filter(func(x int) bool { return x >= 5 })
	n := firstTree(g, fixedSeed{n: 10})
	assert.Equal(t, []int{5}, shrinkValues(n))
}

func TestFilter_ImpossiblePredicateExhausts(t *testing.T) {
	g := zeroToTen().Filter(func(int) bool { return false })
	got := kinds(g.GenerateSpecimens(seed.New(1), testSize, 100))
	want := append(repeatKind(outcome.KindRejected, specimens.DefaultExhaustionThreshold), outcome.KindExhausted)
	assert.Equal(t, want, got)

	t.Run("custom threshold", func(t *testing.T) {
		got := kinds(g.GenerateSpecimens(seed.New(1), testSize, 100, specimens.WithExhaustionThreshold(3)))
		assert.Equal(t, append(repeatKind(outcome.KindRejected, 3), outcome.KindExhausted), got)
	})
}

func TestFilter_RejectionsAreReported(t *testing.T) {
	// with a fixed draw of 3 an odd-only filter never rejects, an even-only one always does
	odd := zeroToTen().Filter(func(x int) bool { return x%2 == 1 })
	assert.Equal(t, repeatKind(outcome.KindAccepted, 5), kinds(odd.GenerateSpecimens(fixedSeed{n: 3}, testSize, 5)))

	var rejected int
	for sp := range zeroToTen().Filter(func(x int) bool { return x < 3 }).GenerateSpecimens(seed.New(4), testSize, 200) {
		if sp.IsRejected() {
			rejected++
		}
	}
	assert.Positive(t, rejected)
}

func TestFilter_CommutesAndAssociates(t *testing.T) {
	p := func(x int) bool { return x%2 == 0 }
	q := func(x int) bool { return x > 3 }
	g := zeroToTen()

	variants := map[string]specimens.Generator[int]{
		"p then q": g.Filter(p).Filter(q),
		"q then p": g.Filter(q).Filter(p),
		"p and q":  g.Filter(func(x int) bool { return p(x) && q(x) }),
	}
	for _, s := range []seed.Seed{seed.New(1), seed.New(2), seed.Spawn()} {
		var want []outcome.Specimen[int]
		for name, v := range variants {
			got := sequence.Collect(v.GenerateSpecimens(s, testSize, 200))
			if want == nil {
				want = got
				continue
			}
			assert.Equal(t, want, got, name)
		}
	}
}

func TestBind_ExhaustsWithRejectedSource(t *testing.T) {
	g := specimens.Bind(specimens.Rejected[int](), func(int) specimens.Generator[int] { return specimens.Constant(1) })
	assert.Contains(t, kinds(g.SampleSpecimens(testSize, 11)), outcome.KindExhausted)
}

func TestBind_ExhaustsWithRejectedContinuation(t *testing.T) {
	g := specimens.Bind(specimens.Constant(1), func(int) specimens.Generator[int] { return specimens.Rejected[int]() })
	assert.Contains(t, kinds(g.SampleSpecimens(testSize, 11)), outcome.KindExhausted)
}

func TestBind_InfiniteSources(t *testing.T) {
	two := func(int) specimens.Generator[int] { return specimens.Constant(2) }
	got := sequence.Collect(specimens.Bind(specimens.Infinite(1), two).Sample(testSize, 100))
	assert.Len(t, got, 100)

	inf := func(int) specimens.Generator[int] { return specimens.Infinite(1) }
	got = sequence.Collect(specimens.Bind(specimens.Constant(2), inf).Sample(testSize, 100))
	assert.Len(t, got, 100)
}

func TestBind_Trivial(t *testing.T) {
	g := specimens.Bind(specimens.Constant(1), func(int) specimens.Generator[int] { return specimens.Constant(2) })
	for sp := range g.SampleSpecimens(testSize, 10) {
		v, ok := sp.Value()
		require.True(t, ok)
		assert.Equal(t, 2, v)
	}
}

func TestBind_ConstantPreservesShrinkShape(t *testing.T) {
	shape := func(n tree.Node[int]) string {
		return tree.Evaluate(tree.Map(nodeTree(n), func(int) string { return "node" }), -1).String()
	}
	for _, s := range []seed.Seed{fixedSeed{n: 6}, seed.New(10), seed.New(11)} {
		bound := specimens.Bind(zeroToTen(), func(int) specimens.Generator[int] { return specimens.Constant(2) })
		assert.Equal(t, shape(firstTree(zeroToTen(), s)), shape(firstTree(bound, s)))
	}
}

func TestBind_ContinuationShrinksComeFirst(t *testing.T) {
	// x from [0,4] fixed at 4, then y from [0,x] fixed at 4 too
	g := specimens.Bind(specimens.Integer(numeric.Constant(numeric.Int, 0, 4)), func(x int) specimens.Generator[[2]int] {
		return specimens.Map(specimens.Integer(numeric.Constant(numeric.Int, 0, x)), func(y int) [2]int { return [2]int{x, y} })
	})
	n := firstTree(g, fixedSeed{n: 4})
	assert.Equal(t, [2]int{4, 4}, n.Value)
	assert.Equal(t, [][2]int{
		{4, 0}, {4, 2}, {4, 1}, // y shrinks
		{0, 0}, {2, 2}, {1, 1}, // x shrinks, y redrawn and clamped under the same seed
	}, shrinkValues(n))
}

func TestBind_DropsBranchesThatKeepRejecting(t *testing.T) {
	g := specimens.Bind(zeroToTen(), func(x int) specimens.Generator[int] {
		if x != 10 {
			return specimens.Rejected[int]()
		}
		return specimens.Constant(x)
	})
	n := firstTree(g, fixedSeed{n: 10})
	assert.Equal(t, 10, n.Value)
	assert.Empty(t, n.Children)
}

func TestZip_Projections(t *testing.T) {
	s := seed.New(0)
	left := zeroToTen()

	zipped := specimens.Map(specimens.Zip(left, specimens.Constant(0)), func(p specimens.Pair[int, int]) int { return p.First })
	assert.Equal(t, evaluated(left, s), evaluated(zipped, s))

	swapped := specimens.Map(specimens.Zip(specimens.Constant(0), left), func(p specimens.Pair[int, int]) int { return p.Second })
	assert.Equal(t, evaluated(left, s), evaluated(swapped, s))
}

func TestZip_RejectedSideExhausts(t *testing.T) {
	a := specimens.Zip(specimens.Rejected[int](), specimens.Constant(0))
	b := specimens.Zip(specimens.Constant(0), specimens.Rejected[int]())
	assert.Contains(t, kinds(a.SampleSpecimens(testSize, 100)), outcome.KindExhausted)
	assert.Contains(t, kinds(b.SampleSpecimens(testSize, 100)), outcome.KindExhausted)
}

func TestMapN(t *testing.T) {
	one, two, three, four := specimens.Constant(1), specimens.Constant(2), specimens.Constant(3), specimens.Constant(4)

	v, _ := sequence.First(specimens.Map2(one, two, func(a, b int) int { return a + b }).Generate(seed.New(1), testSize, 1))
	assert.Equal(t, 3, v)
	v, _ = sequence.First(specimens.Map3(one, two, three, func(a, b, c int) int { return a + b + c }).Generate(seed.New(1), testSize, 1))
	assert.Equal(t, 6, v)
	v, _ = sequence.First(specimens.Map4(one, two, three, four, func(a, b, c, d int) int { return a * b * c * d }).Generate(seed.New(1), testSize, 1))
	assert.Equal(t, 24, v)
}

func TestConcat(t *testing.T) {
	g := specimens.Concat(specimens.Constant(1), specimens.Constant(2))
	assert.Equal(t, []int{1, 2, 1, 2, 1}, sequence.Collect(g.Generate(seed.New(1), testSize, 5)))

	draws := sequence.Collect(g.Run(seed.New(1), testSize))
	assert.Len(t, draws, 2)
}

func TestNoShrink(t *testing.T) {
	n := firstTree(zeroToTen().NoShrink(), fixedSeed{n: 10})
	assert.Equal(t, 10, n.Value)
	assert.Empty(t, n.Children)
}

func evaluated[T any](g specimens.Generator[T], s seed.Seed) []tree.Node[T] {
	return sequence.Collect(sequence.Map(g.GenerateTrees(s, testSize, 10), func(t tree.Tree[T]) tree.Node[T] {
		return tree.Evaluate(t, -1)
	}))
}

// nodeTree turns a realized node back into a lazy tree.
func nodeTree[T any](n tree.Node[T]) tree.Tree[T] {
	return tree.New(n.Value, sequence.Map(sequence.FromSlice(n.Children), nodeTree[T]))
}
