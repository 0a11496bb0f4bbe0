// Package specimens is the public face of the engine: composable generators
// of shrinkable test data.
//
// A Generator[T] turns a seed and a size into draws. Each draw is either an
// accepted shrink tree (a value plus lazily computed simpler alternatives) or
// a rejection, paired with the seed left over for the next draw.
//
// Building generators:
//   - Primitives: Constant, Infinite, Integral, Integer, Item, PickWeighted,
//     Rejected, Exhausted, and Create for custom value sources.
//   - Transformations: Map, Bind, (Generator).Filter, (Generator).NoShrink.
//   - Combinations: Zip, Map2, Map3, Map4, Concat.
//
// Pulling values:
//   - GenerateSpecimens exposes accepted values, rejections and the Exhausted
//     marker.
//   - GenerateTrees and Generate yield accepted trees or bare values.
//   - The Sample variants use a spawned seed instead of a given one.
//
// Every entry point is deterministic for a given seed and size:
//
//	evens := specimens.Integer(numeric.Constant(numeric.Int, 0, 100)).
//		Filter(func(x int) bool { return x%2 == 0 })
//	for x := range evens.Generate(seed.New(7), 30, 5) {
//		fmt.Println(x)
//	}
//
// Statistics and MetaStatistics summarize how a generator's output is
// distributed across caller-defined buckets.
package specimens
