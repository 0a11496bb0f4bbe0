// SPDX-License-Identifier: MIT
// Package: specimens/specimens
//
// config.go - resolved configuration and deterministic defaults.
//
// Defaults:
//   - seed       = spawned from wall-clock entropy when not set
//   - size       = DefaultSize
//   - sampleSize = DefaultSampleSize
//   - threshold  = DefaultExhaustionThreshold

package specimens

import (
	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/seed"
)

const (
	// DefaultSize is the size used by statistics when none is given.
	DefaultSize numeric.Size = 30
	// DefaultSampleSize is the number of values statistics draw.
	DefaultSampleSize = 100
	// DefaultExhaustionThreshold is the number of consecutive rejections after
	// which a stream is declared exhausted.
	DefaultExhaustionThreshold = 10
)

// config aggregates the knobs of the iteration and statistics entry points.
type config struct {
	seed       seed.Seed // nil until resolved
	size       numeric.Size
	sampleSize int
	threshold  int
}

// newConfig applies opts in order over the defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		size:       DefaultSize,
		sampleSize: DefaultSampleSize,
		threshold:  DefaultExhaustionThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.seed == nil {
		cfg.seed = seed.Spawn()
	}
	return cfg
}
