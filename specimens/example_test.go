package specimens_test

import (
	"fmt"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/seed"
	"github.com/katalvlaran/specimens/sequence"
	"github.com/katalvlaran/specimens/specimens"
	"github.com/katalvlaran/specimens/tree"
)

// ExampleGenerator_Filter shows that every accepted value satisfies the
// predicate, whatever the seed.
func ExampleGenerator_Filter() {
	evens := specimens.Integer(numeric.Constant(numeric.Int, 0, 100)).
		Filter(func(x int) bool { return x%2 == 0 })

	ok := true
	for x := range evens.Generate(seed.New(7), specimens.DefaultSize, 50) {
		ok = ok && x%2 == 0
	}
	fmt.Println(ok)
	// Output: true
}

// ExampleZip pairs draws from two generators.
func ExampleZip() {
	pairs := specimens.Zip(specimens.Constant("id"), specimens.Item([]int{42}))
	for p := range pairs.Generate(seed.New(1), specimens.DefaultSize, 2) {
		fmt.Println(p.First, p.Second)
	}
	// Output:
	// id 42
	// id 42
}

// ExampleGenerator_GenerateTrees prints the full shrink tree of a drawn value.
func ExampleGenerator_GenerateTrees() {
	g := specimens.Integer(numeric.Constant(numeric.Int, 0, 5))
	t, _ := sequence.First(g.GenerateTrees(fixedSeed{n: 5}, specimens.DefaultSize, 1))
	fmt.Println(tree.Evaluate(t, -1))
	// Output: [5,[0,[2,[0,[1,[0]]]],[1,[0]]]]
}
