// Package outcome models the local verdict on a generated candidate and the
// detection of generators that can no longer produce anything useful.
//
// An Outcome is Accepted(x) or Rejected. Rejected carries no payload: it only
// says "discard this draw and try again".
//
// A Specimen is what the iteration layer hands to callers. Besides the two
// Outcome variants it has a third, out-of-band kind, Exhausted, emitted once a
// Guard has seen too many consecutive rejections. Nothing follows an Exhausted
// specimen; pulling past it through a Stream is a usage error and panics with
// ErrExhaustedStream.
//
//	for sp := range outcome.Guarded(outcomes, 10) {
//		if sp.IsExhausted() {
//			break
//		}
//		...
//	}
package outcome
