// SPDX-License-Identifier: MIT
// Package: specimens/cmd/specimens
//
// sample.go - prints generated integers or their shrink trees.

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/seed"
	"github.com/katalvlaran/specimens/tree"
)

type sampleOptions struct {
	rangeOptions
	count int
	trees bool
	depth int
}

func newSampleCommand(c *cli) *cobra.Command {
	opts := sampleOptions{}
	cmd := &cobra.Command{
		Use:   "sample [OPTIONS]",
		Short: "Print generated integers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.resolve(cmd.Flags()); err != nil {
				return err
			}
			if opts.count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", opts.count)
			}
			return runSample(cmd, c, opts)
		},
	}
	flags := cmd.Flags()
	opts.register(flags, 100)
	flags.IntVarP(&opts.count, "count", "n", 10, "Number of values")
	flags.BoolVar(&opts.trees, "trees", false, "Print each value's shrink tree")
	flags.IntVar(&opts.depth, "depth", 2, "Shrink tree depth to print (-1 for all)")
	return cmd
}

func runSample(cmd *cobra.Command, c *cli, opts sampleOptions) error {
	c.log.WithFields(logrus.Fields{"seed": opts.seed, "size": opts.size}).Info("sampling")
	out := cmd.OutOrStdout()
	trees := opts.generator().GenerateTrees(seed.New(opts.seed), numeric.Size(opts.size), opts.count)
	for t := range trees {
		if opts.trees {
			fmt.Fprintln(out, tree.Evaluate(t, opts.depth))
			continue
		}
		fmt.Fprintln(out, t.Value)
	}
	return nil
}
