package random_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/random"
	"github.com/katalvlaran/specimens/seed"
	"github.com/katalvlaran/specimens/sequence"
)

func values[T any](ps iter.Seq[random.Production[T]]) []T {
	return sequence.Collect(sequence.Map(ps, func(p random.Production[T]) T { return p.Value }))
}

func die() random.Random[int] {
	return random.Integral(numeric.Int, numeric.Constant(numeric.Int, 1, 6))
}

func TestConstant_KeepsSeed(t *testing.T) {
	s := seed.New(5)
	p, ok := sequence.First(random.Constant("x").Run(s, 0))
	require.True(t, ok)
	assert.Equal(t, "x", p.Value)
	assert.Equal(t, s, p.Seed)
}

func TestIntegral_SingleProductionWithinBounds(t *testing.T) {
	s := seed.New(3)
	for i := 0; i < 200; i++ {
		ps := sequence.Collect(die().Run(s, 0))
		require.Len(t, ps, 1)
		require.GreaterOrEqual(t, ps[0].Value, 1)
		require.LessOrEqual(t, ps[0].Value, 6)
		s = ps[0].Seed
	}
}

func TestIntegral_HandsBackLeftSeed(t *testing.T) {
	s := seed.New(8)
	left, _ := s.Split()
	p, _ := sequence.First(die().Run(s, 0))
	assert.Equal(t, left, p.Seed)
}

func TestRepeat_Deterministic(t *testing.T) {
	rolls := func() []int {
		return values(sequence.Take(die().Repeat().Run(seed.New(42), 0), 50))
	}
	first := rolls()
	assert.Len(t, first, 50)
	assert.Equal(t, first, rolls())

	distinct := map[int]bool{}
	for _, v := range first {
		distinct[v] = true
	}
	assert.Greater(t, len(distinct), 1, "repeat must not replay one draw")
}

func TestRepeat_EndsOnEmptyRun(t *testing.T) {
	empty := random.From(func(seed.Seed, numeric.Size) iter.Seq[random.Production[int]] {
		return sequence.Empty[random.Production[int]]()
	})
	assert.Empty(t, sequence.Collect(empty.Repeat().Run(seed.New(1), 0)))
}

func TestMap(t *testing.T) {
	s := seed.New(9)
	doubled := values(random.Map(die(), func(x int) int { return 2 * x }).Run(s, 0))
	plain := values(die().Run(s, 0))
	assert.Equal(t, []int{2 * plain[0]}, doubled)
}

func TestBind_ThreadsSeed(t *testing.T) {
	s := seed.New(77)
	pair := random.Bind(die(), func(x int) random.Random[[2]int] {
		return random.Map(die(), func(y int) [2]int { return [2]int{x, y} })
	})
	got := sequence.Collect(pair.Run(s, 0))
	require.Len(t, got, 1)

	// replay the composition by hand
	p1, _ := sequence.First(die().Run(s, 0))
	p2, _ := sequence.First(die().Run(p1.Seed, 0))
	assert.Equal(t, [2]int{p1.Value, p2.Value}, got[0].Value)
	assert.Equal(t, p2.Seed, got[0].Seed)
}

func TestExpandAndSpread(t *testing.T) {
	s := seed.New(1)
	triple := random.Spread(random.Constant(7), func(x int) iter.Seq[int] {
		return sequence.FromSlice([]int{x, x + 1, x + 2})
	})
	ps := sequence.Collect(triple.Run(s, 0))
	require.Len(t, ps, 3)
	for i, p := range ps {
		assert.Equal(t, 7+i, p.Value)
		assert.Equal(t, s, p.Seed)
	}

	dropped := random.Expand(die(), func(seed.Seed, numeric.Size, int) iter.Seq[random.Production[string]] {
		return sequence.Empty[random.Production[string]]()
	})
	assert.True(t, sequence.IsEmpty(dropped.Run(s, 0)))
}

func TestIntegral_RespectsSize(t *testing.T) {
	r := random.Integral(numeric.Int, numeric.Linear(numeric.Int, 0, 1000))
	for _, v := range values(sequence.Take(r.Repeat().Run(seed.New(4), 0), 100)) {
		require.Equal(t, 0, v, "size 0 pins a linear range to its origin")
	}
}

func TestInfinite(t *testing.T) {
	got := values(sequence.Take(random.Infinite("a").Run(seed.New(1), 0), 5))
	assert.Equal(t, []string{"a", "a", "a", "a", "a"}, got)
}
