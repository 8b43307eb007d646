// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adtperf prints timing tables for the sorts and maps in package adt.
//
// Usage:
//
//	adtperf sort [flags] > sort.dat
//	adtperf map [flags] > map.dat
//
// The output is suitable for plotting with gnuplot. Progress and logs go
// to standard error.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.3.0"

type options struct {
	configPath string
	verbose    bool
	quiet      bool

	// flag overrides, applied when set
	start, step, stop, runs, shuffles int
	seed                              uint64
	sorts, orders                     []string
	mapSizes                          []int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:          "adtperf",
		Short:        "Time sequence sorts and AVL map operations",
		Version:      version,
		SilenceUsage: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every timed run")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "no progress bar")
	pf.IntVar(&opts.runs, "runs", 0, "repetitions per measurement")
	pf.Uint64Var(&opts.seed, "seed", 0, "random seed")

	sortCmd := &cobra.Command{
		Use:   "sort",
		Short: "Time merge and quick sort over sorted, reversed and shuffled sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, &opts)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runSort(cmd.OutOrStdout(), cfg, log, !opts.quiet)
		},
	}
	sf := sortCmd.Flags()
	sf.IntVar(&opts.start, "start", 0, "first size")
	sf.IntVar(&opts.step, "step", 0, "size increment")
	sf.IntVar(&opts.stop, "stop", 0, "last size")
	sf.IntVar(&opts.shuffles, "shuffles", 0, "shuffle passes for shuffled input")
	sf.StringSliceVar(&opts.sorts, "sorts", nil, "sorts to time (array-quick, array-quick-rand, array-merge, linked-quick, linked-merge)")
	sf.StringSliceVar(&opts.orders, "orders", nil, "input orders (shuffled, sorted, reversed)")

	mapCmd := &cobra.Command{
		Use:   "map",
		Short: "Time AVL map insert, lookup and erase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, &opts)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runMap(cmd.OutOrStdout(), cfg, log, !opts.quiet)
		},
	}
	mapCmd.Flags().IntSliceVar(&opts.mapSizes, "sizes", nil, "map sizes")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print adtperf version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(sortCmd, mapCmd, versionCmd)
	return rootCmd
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, opts *options) (Config, *zap.Logger, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return cfg, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Start = opts.start
	}
	if flags.Changed("step") {
		cfg.Step = opts.step
	}
	if flags.Changed("stop") {
		cfg.Stop = opts.stop
	}
	if flags.Changed("runs") {
		cfg.Runs = opts.runs
	}
	if flags.Changed("shuffles") {
		cfg.Shuffles = opts.shuffles
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("sorts") {
		cfg.Sorts = opts.sorts
	}
	if flags.Changed("orders") {
		cfg.Orders = opts.orders
	}
	if flags.Changed("sizes") {
		cfg.Map.Sizes = opts.mapSizes
	}
	if err := cfg.validate(); err != nil {
		return cfg, nil, err
	}
	log, err := newLogger(opts.verbose)
	if err != nil {
		return cfg, nil, err
	}
	log.Debug("configured", zap.Any("config", cfg))
	return cfg, log, nil
}
