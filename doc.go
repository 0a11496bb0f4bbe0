// Package specimens is the module root of a property-based test-data engine.
//
// Given a description of a value domain it produces a stream of random,
// size-parameterized candidate values, each paired with a lazily expanded
// tree of smaller alternatives to replay when a property fails.
//
// Layout, leaves first:
//
//	seed/      - splittable deterministic random source (SplitMix64)
//	sequence/  - lazy sequence helpers over iter.Seq
//	numeric/   - numeric capabilities and size-scaled ranges
//	shrink/    - candidate shrinks (Towards, None)
//	tree/      - lazy rose trees of shrinks
//	outcome/   - Accepted/Rejected outcomes, Specimen kinds, exhaustion guard
//	random/    - seed-threading random productions
//	specimens/ - Generator and its combinators, iteration and statistics
//	model/     - state-machine and reducer-driven generators
//	property/  - property runner with greedy shrinking
//	cmd/specimens - command-line demo (sample, stats, shrink)
//
// The engine packages are silent; property logs through an injected logrus
// logger and cmd/specimens owns the process logger. Usage errors panic
// with sentinel errors that callers match with errors.Is.
package specimens
