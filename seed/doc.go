// Package seed provides the splittable pseudo-random source every generator
// in this module threads through its compositions.
//
// A Seed is a value. Reading a number or splitting returns fresh Seeds and
// never mutates the receiver, so the same Seed always reproduces the same
// stream:
//
//	s := seed.New(42)
//	left, right := s.Split()
//	n, next := right.NextInt(0, 10)
//
// Guarantees:
//   - Determinism: equal seeds split into equal children and draw equal numbers.
//   - Independence: the two children of a split evolve as unrelated streams.
//   - No hidden globals: the only non-deterministic constructor is Spawn.
//
// The default implementation is SplitMix (SplitMix64, Steele/Lea/Flood 2014).
// Callers may provide their own Seed implementation; the engine depends only on
// the interface contract.
package seed
