// SPDX-License-Identifier: MIT
// Package: specimens/specimens
//
// options.go - functional options for iteration and statistics.
//
// Option constructors validate eagerly and panic with ErrInvalidOption on
// meaningless input, so a bad configuration fails where it is written.

package specimens

import (
	"fmt"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/seed"
)

// Option customizes an iteration or statistics call.
type Option func(*config)

// WithSeed fixes the seed. Panics on nil.
func WithSeed(s seed.Seed) Option {
	if s == nil {
		panic(fmt.Errorf("%w: WithSeed(nil)", ErrInvalidOption))
	}
	return func(c *config) { c.seed = s }
}

// WithSize sets the size. Panics outside [0, numeric.MaxSize].
func WithSize(size numeric.Size) Option {
	if size < 0 || size > numeric.MaxSize {
		panic(fmt.Errorf("%w: WithSize(%d)", ErrInvalidOption, size))
	}
	return func(c *config) { c.size = size }
}

// WithSampleSize sets how many values statistics draw. Panics if n < 1.
func WithSampleSize(n int) Option {
	if n < 1 {
		panic(fmt.Errorf("%w: WithSampleSize(%d)", ErrInvalidOption, n))
	}
	return func(c *config) { c.sampleSize = n }
}

// WithExhaustionThreshold sets how many consecutive rejections exhaust a
// stream. Panics if n < 1.
func WithExhaustionThreshold(n int) Option {
	if n < 1 {
		panic(fmt.Errorf("%w: WithExhaustionThreshold(%d)", ErrInvalidOption, n))
	}
	return func(c *config) { c.threshold = n }
}
