// SPDX-License-Identifier: MIT
// Package: specimens/property
//
// options.go - functional options for Check.
//
// Defaults:
//   - trials     = DefaultTrials
//   - maxShrinks = DefaultMaxShrinks
//   - size       = specimens.DefaultSize
//   - seed       = SPECIMENS_SEED, else wall clock
//   - logger     = discards everything

package property

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/specimens"
)

const (
	// DefaultTrials is the number of accepted values a property is run on.
	DefaultTrials = 100
	// DefaultMaxShrinks bounds the number of shrink candidates evaluated.
	DefaultMaxShrinks = 1000
	// SeedEnv names the environment variable consulted for a seed.
	SeedEnv = "SPECIMENS_SEED"
)

// Option configures Check.
type Option func(*config)

type config struct {
	seed       int64
	seedSet    bool
	size       numeric.Size
	trials     int
	maxShrinks int
	logger     logrus.FieldLogger
}

// WithSeed pins the run to seed n, overriding SPECIMENS_SEED.
func WithSeed(n int64) Option {
	return func(c *config) {
		c.seed = n
		c.seedSet = true
	}
}

// WithSize sets the size passed to the generator.
// Panics with ErrInvalidOption outside [0, numeric.MaxSize].
func WithSize(size numeric.Size) Option {
	if size < 0 || size > numeric.MaxSize {
		panic(fmt.Errorf("%w: size %d outside [0, %d]", ErrInvalidOption, size, numeric.MaxSize))
	}
	return func(c *config) { c.size = size }
}

// WithTrials sets how many accepted values are checked.
// Panics with ErrInvalidOption if n < 1.
func WithTrials(n int) Option {
	if n < 1 {
		panic(fmt.Errorf("%w: trials must be at least 1, got %d", ErrInvalidOption, n))
	}
	return func(c *config) { c.trials = n }
}

// WithMaxShrinks bounds how many shrink candidates are evaluated; 0 turns
// shrinking off. Panics with ErrInvalidOption if n < 0.
func WithMaxShrinks(n int) Option {
	if n < 0 {
		panic(fmt.Errorf("%w: max shrinks must not be negative, got %d", ErrInvalidOption, n))
	}
	return func(c *config) { c.maxShrinks = n }
}

// WithLogger routes the runner's logs to l.
// Panics with ErrInvalidOption if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(fmt.Errorf("%w: nil logger", ErrInvalidOption))
	}
	return func(c *config) { c.logger = l }
}

func newConfig(opts ...Option) config {
	cfg := config{
		size:       specimens.DefaultSize,
		trials:     DefaultTrials,
		maxShrinks: DefaultMaxShrinks,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		cfg.logger = silent
	}
	if !cfg.seedSet {
		cfg.seed = seedFromEnv(cfg.logger)
	}
	return cfg
}

func seedFromEnv(log logrus.FieldLogger) int64 {
	if v := os.Getenv(SeedEnv); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
		log.WithError(err).Warnf("ignoring malformed %s=%q", SeedEnv, v)
	}
	return time.Now().UnixNano()
}
