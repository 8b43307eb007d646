// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gu-cpsc223/adt/internal/perf"
)

// newProgress returns a progress bar over total steps on standard error,
// or nil when progress is off or standard error is not a terminal.
func newProgress(show bool, total int, desc string) *progressbar.ProgressBar {
	fd := os.Stderr.Fd()
	if !show || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func newRunner(cfg Config, log *zap.Logger, bar *progressbar.ProgressBar) *perf.Runner {
	r := &perf.Runner{
		Runs:     cfg.Runs,
		Shuffles: cfg.Shuffles,
		Rand:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
		Logger:   log,
	}
	if bar != nil {
		r.OnRun = func() {
			if err := bar.Add(1); err != nil {
				log.Debug("progress", zap.Error(err))
			}
		}
	}
	return r
}

func runSort(w io.Writer, cfg Config, log *zap.Logger, showProgress bool) error {
	algs, err := perf.LookupAlgorithms(cfg.Sorts)
	if err != nil {
		return err
	}
	orders, err := cfg.orders()
	if err != nil {
		return err
	}
	sizes := cfg.sizes()

	var tab perf.Table
	for _, alg := range algs {
		for _, o := range orders {
			tab.Columns = append(tab.Columns, fmt.Sprintf("avg time %s, %s", alg.Desc, o))
		}
	}

	total := len(sizes) * len(algs) * len(orders) * cfg.Runs
	bar := newProgress(showProgress, total, "sorting")
	r := newRunner(cfg, log, bar)

	log.Info("timing sorts",
		zap.Strings("sorts", cfg.Sorts),
		zap.Strings("orders", cfg.Orders),
		zap.Int("start", cfg.Start),
		zap.Int("stop", cfg.Stop),
		zap.Int("step", cfg.Step),
		zap.Int("runs", cfg.Runs))
	t0 := time.Now()
	for _, n := range sizes {
		row := perf.Row{Size: n}
		for _, alg := range algs {
			for _, o := range orders {
				d, err := r.TimeSort(alg, n, o)
				if err != nil {
					log.Error("sort failed", zap.String("algorithm", alg.Name), zap.Int("size", n), zap.Error(err))
					return err
				}
				row.Values = append(row.Values, perf.Millis(d))
			}
		}
		tab.Rows = append(tab.Rows, row)
	}
	if bar != nil {
		bar.Finish()
	}
	log.Info("done", zap.Duration("elapsed", time.Since(t0)))

	_, err = tab.WriteTo(w)
	return err
}

func runMap(w io.Writer, cfg Config, log *zap.Logger, showProgress bool) error {
	bar := newProgress(showProgress, len(cfg.Map.Sizes)*cfg.Runs, "map")
	r := newRunner(cfg, log, bar)

	tab := perf.Table{
		Columns: []string{
			"avg time AVL map insert all",
			"avg time AVL map lookup all",
			"avg time AVL map erase all",
			"tree height after inserts",
		},
	}
	log.Info("timing map", zap.Ints("sizes", cfg.Map.Sizes), zap.Int("runs", cfg.Runs))
	for _, n := range cfg.Map.Sizes {
		res, err := r.TimeMap(n)
		if err != nil {
			log.Error("map run failed", zap.Int("size", n), zap.Error(err))
			return err
		}
		tab.Rows = append(tab.Rows, perf.Row{
			Size: n,
			Values: []float64{
				perf.Millis(res.Insert),
				perf.Millis(res.Lookup),
				perf.Millis(res.Erase),
			},
			Counts: []int{res.Height},
		})
	}
	if bar != nil {
		bar.Finish()
	}
	_, err := tab.WriteTo(w)
	return err
}
