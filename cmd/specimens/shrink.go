// SPDX-License-Identifier: MIT
// Package: specimens/cmd/specimens
//
// shrink.go - demonstrates counterexample minimization on "x < below".

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/property"
)

type shrinkOptions struct {
	rangeOptions
	below  int
	trials int
}

func newShrinkCommand(c *cli) *cobra.Command {
	opts := shrinkOptions{}
	cmd := &cobra.Command{
		Use:   "shrink [OPTIONS]",
		Short: `Check "x < below" and print the minimized counterexample`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.resolve(cmd.Flags()); err != nil {
				return err
			}
			if opts.trials < 1 {
				return fmt.Errorf("--trials must be at least 1, got %d", opts.trials)
			}
			return runShrink(cmd, c, opts)
		},
	}
	flags := cmd.Flags()
	opts.register(flags, 1000)
	flags.IntVar(&opts.below, "below", 500, "Upper bound the property asserts")
	flags.IntVar(&opts.trials, "trials", property.DefaultTrials, "Values to check")
	return cmd
}

func runShrink(cmd *cobra.Command, c *cli, opts shrinkOptions) error {
	r := property.Check(opts.generator(), func(x int) bool { return x < opts.below },
		property.WithSeed(opts.seed),
		property.WithSize(numeric.Size(opts.size)),
		property.WithTrials(opts.trials),
		property.WithLogger(c.log),
	)
	if r.Err != nil {
		return r.Err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r)
	return nil
}
