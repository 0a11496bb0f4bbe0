// Package sequence provides the lazy, possibly infinite sequence combinators
// shared by every layer of the engine.
//
// Sequences are plain iter.Seq values: nothing is computed until a consumer
// ranges over them, and a consumer may stop at any point without cleanup.
// Every combinator keeps its iteration state inside the returned function, so
// ranging over the same sequence twice replays it from the start.
//
//	evens := sequence.Filter(sequence.Infinite(), func(n uint64) bool { return n%2 == 0 })
//	first := sequence.Collect(sequence.Take(evens, 3)) // [0 2 4]
package sequence
