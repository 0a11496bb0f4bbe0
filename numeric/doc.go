// Package numeric abstracts arithmetic over a scalar domain and defines how
// the size parameter scales a domain's bounds.
//
// A Numeric[N] carries the handful of operations the engine needs (zero, one,
// add, sub, mul, div, comparisons and a seeded uniform draw), so shrinking and
// range scaling are written once for every integer and float type:
//
//	r := numeric.Linear(numeric.Int, -100, 100)
//	lo, hi := r.Bounds(0)  // -100, -100
//	lo, hi = r.Bounds(99)  // -100, 100
//
// Ranges:
//   - Constant ignores size.
//   - Linear and LinearFrom scale from the origin at size 0 to the full bounds
//     at MaxSize, clamped to [min, max].
//
// Constructors panic with ErrInvalidRange when min > max or when the origin
// falls outside [min, max].
package numeric
