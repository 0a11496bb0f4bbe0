// SPDX-License-Identifier: MIT
// Package: specimens/cmd/specimens
//
// root.go - root command, logger setup and the flags shared by subcommands.

package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/specimens"
)

// cli carries what every subcommand needs once flags are parsed.
type cli struct {
	logLevel string
	log      *logrus.Logger
}

func newRootCommand() *cobra.Command {
	c := &cli{log: logrus.New()}
	cmd := &cobra.Command{
		Use:          "specimens",
		Short:        "Generate, summarize and shrink random test data",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logrus.ParseLevel(c.logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			c.log.SetLevel(lvl)
			c.log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		newSampleCommand(c),
		newStatsCommand(c),
		newShrinkCommand(c),
	)
	return cmd
}

// rangeOptions describes the integer generator every subcommand works on.
type rangeOptions struct {
	min, max int
	linear   bool
	size     int
	seed     int64
}

func (o *rangeOptions) register(flags *pflag.FlagSet, defaultMax int) {
	flags.IntVar(&o.min, "min", 0, "Smallest value")
	flags.IntVar(&o.max, "max", defaultMax, "Largest value")
	flags.BoolVar(&o.linear, "linear", false, "Grow the range with size instead of using it whole")
	flags.IntVar(&o.size, "size", int(specimens.DefaultSize), fmt.Sprintf("Generation size in [0, %d]", numeric.MaxSize))
	flags.Int64Var(&o.seed, "seed", 0, "Seed (default: derived from the clock)")
}

// resolve validates the options and fills in a seed when none was given.
func (o *rangeOptions) resolve(flags *pflag.FlagSet) error {
	if o.min > o.max {
		return fmt.Errorf("--min %d is greater than --max %d", o.min, o.max)
	}
	if o.size < 0 || o.size > int(numeric.MaxSize) {
		return fmt.Errorf("--size %d outside [0, %d]", o.size, numeric.MaxSize)
	}
	if !flags.Changed("seed") {
		o.seed = time.Now().UnixNano()
	}
	return nil
}

func (o *rangeOptions) generator() specimens.Generator[int] {
	if o.linear {
		return specimens.Integer(numeric.Linear(numeric.Int, o.min, o.max))
	}
	return specimens.Integer(numeric.Constant(numeric.Int, o.min, o.max))
}
