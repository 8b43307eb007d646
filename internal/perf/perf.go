// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perf times the sorts and map operations of package adt
// over inputs of increasing size.
package perf

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/gu-cpsc223/adt"
)

// An Order is the arrangement of the input before sorting.
type Order int

const (
	Shuffled Order = iota
	Sorted
	Reversed
)

var orderNames = []string{
	Shuffled: "shuffled",
	Sorted:   "sorted",
	Reversed: "reversed",
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// ParseOrder returns the Order named s.
func ParseOrder(s string) (Order, error) {
	for i, name := range orderNames {
		if s == name {
			return Order(i), nil
		}
	}
	return 0, errors.Errorf("unknown input order %q", s)
}

// An Algorithm is one sort applied to one sequence backing.
type Algorithm struct {
	Name string
	Desc string
	New  func() adt.Sequence[int]
	Sort func(adt.Sequence[int])
}

// Algorithms lists every sort that can be timed.
var Algorithms = []Algorithm{
	{
		Name: "array-quick",
		Desc: "array quick sort",
		New:  func() adt.Sequence[int] { return new(adt.ArraySeq[int]) },
		Sort: adt.Sequence[int].QuickSort,
	},
	{
		Name: "array-quick-rand",
		Desc: "array quick sort with rand pivot",
		New:  func() adt.Sequence[int] { return new(adt.ArraySeq[int]) },
		Sort: func(s adt.Sequence[int]) { s.(*adt.ArraySeq[int]).QuickSortRandPivot() },
	},
	{
		Name: "array-merge",
		Desc: "array merge sort",
		New:  func() adt.Sequence[int] { return new(adt.ArraySeq[int]) },
		Sort: adt.Sequence[int].MergeSort,
	},
	{
		Name: "linked-quick",
		Desc: "linked list quick sort",
		New:  func() adt.Sequence[int] { return new(adt.LinkedSeq[int]) },
		Sort: adt.Sequence[int].QuickSort,
	},
	{
		Name: "linked-merge",
		Desc: "linked list merge sort",
		New:  func() adt.Sequence[int] { return new(adt.LinkedSeq[int]) },
		Sort: adt.Sequence[int].MergeSort,
	},
}

// LookupAlgorithms returns the algorithms with the given names, in that order.
func LookupAlgorithms(names []string) ([]Algorithm, error) {
	var algs []Algorithm
	for _, name := range names {
		found := false
		for _, a := range Algorithms {
			if a.Name == name {
				algs = append(algs, a)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("unknown sort %q", name)
		}
	}
	return algs, nil
}

// Load appends 0..n-1 to s in the given order.
// Shuffled input is shuffled the given number of times.
func Load(s adt.Sequence[int], n int, order Order, shuffles int, r *rand.Rand) error {
	vals := make([]int, n)
	for i := range vals {
		switch order {
		case Reversed:
			vals[i] = n - 1 - i
		default:
			vals[i] = i
		}
	}
	if order == Shuffled {
		for range shuffles {
			r.Shuffle(n, func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
		}
	}
	for _, v := range vals {
		if err := s.Insert(v, s.Len()); err != nil {
			return err
		}
	}
	return nil
}

// CheckSorted returns an error describing the first out-of-order pair in s.
func CheckSorted(s adt.Sequence[int]) error {
	first := true
	var prev int
	for i, v := range s.All() {
		if !first && prev > v {
			return errors.Errorf("sequence not sorted: s[%d] = %d > s[%d] = %d", i-1, prev, i, v)
		}
		prev, first = v, false
	}
	return nil
}

// A Runner times operations, averaging over Runs repetitions.
type Runner struct {
	Runs     int
	Shuffles int
	Rand     *rand.Rand
	Logger   *zap.Logger

	// OnRun, if non-nil, is called after every timed repetition.
	OnRun func()
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Runner) validate() error {
	if r.Runs <= 0 {
		return errors.Errorf("runs must be positive, got %d", r.Runs)
	}
	if r.Rand == nil {
		return errors.New("perf: Runner.Rand is nil")
	}
	return nil
}

func (r *Runner) ran() {
	if r.OnRun != nil {
		r.OnRun()
	}
}

// TimeSort returns the average time alg takes to sort n elements
// arranged in the given order. Each repetition sorts a freshly loaded
// sequence and verifies the result.
func (r *Runner) TimeSort(alg Algorithm, n int, order Order) (time.Duration, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	var total time.Duration
	for run := range r.Runs {
		s := alg.New()
		if err := Load(s, n, order, r.Shuffles, r.Rand); err != nil {
			return 0, errors.Wrapf(err, "loading %d elements", n)
		}
		t0 := time.Now()
		alg.Sort(s)
		d := time.Since(t0)
		total += d
		r.ran()
		if err := CheckSorted(s); err != nil {
			return 0, errors.Wrapf(err, "%s, %s, n=%d", alg.Name, order, n)
		}
		if s.Len() != n {
			return 0, errors.Errorf("%s, %s: sorted %d elements, want %d", alg.Name, order, s.Len(), n)
		}
		r.logger().Debug("sorted",
			zap.String("algorithm", alg.Name),
			zap.Stringer("order", order),
			zap.Int("size", n),
			zap.Int("run", run),
			zap.Duration("elapsed", d))
	}
	return total / time.Duration(r.Runs), nil
}

// A MapResult holds the average timings of one TimeMap size.
type MapResult struct {
	Size   int
	Insert time.Duration
	Lookup time.Duration
	Erase  time.Duration
	Height int
}

// TimeMap inserts n shuffled keys into an AVLMap, looks each one up,
// then erases them all in a different order, timing each phase.
func (r *Runner) TimeMap(n int) (MapResult, error) {
	res := MapResult{Size: n}
	if err := r.validate(); err != nil {
		return res, err
	}
	for run := range r.Runs {
		keys := r.Rand.Perm(n)
		var m adt.AVLMap[int, int]

		t0 := time.Now()
		for _, k := range keys {
			m.Insert(k, -k)
		}
		t1 := time.Now()
		for _, k := range keys {
			v, err := m.At(k)
			if err != nil {
				return res, err
			}
			if v != -k {
				return res, errors.Errorf("At(%d) = %d, want %d", k, v, -k)
			}
		}
		t2 := time.Now()
		height := m.Height()
		r.Rand.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		t3 := time.Now()
		for _, k := range keys {
			if err := m.Erase(k); err != nil {
				return res, err
			}
		}
		t4 := time.Now()
		r.ran()

		if !m.Empty() || m.Height() != 0 {
			return res, errors.Errorf("after erasing %d keys: len %d, height %d", n, m.Len(), m.Height())
		}
		res.Insert += t1.Sub(t0)
		res.Lookup += t2.Sub(t1)
		res.Erase += t4.Sub(t3)
		res.Height = max(res.Height, height)
		r.logger().Debug("timed map",
			zap.Int("size", n),
			zap.Int("run", run),
			zap.Int("height", height))
	}
	runs := time.Duration(r.Runs)
	res.Insert /= runs
	res.Lookup /= runs
	res.Erase /= runs
	return res, nil
}

// A Table is a gnuplot-style data table: comment lines naming each
// column, then one line per size with times in milliseconds.
// Columns names the Values columns followed by the Counts columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// A Row is one line of a Table.
type Row struct {
	Size   int
	Values []float64
	Counts []int
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// WriteTo writes t to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var buf strings.Builder
	buf.WriteString("# All times in milliseconds (msec)\n")
	buf.WriteString("# Column 1 = size\n")
	for i, c := range t.Columns {
		fmt.Fprintf(&buf, "# Column %d = %s\n", i+2, c)
	}
	for _, row := range t.Rows {
		fmt.Fprintf(&buf, "%d", row.Size)
		for _, v := range row.Values {
			fmt.Fprintf(&buf, " %.2f", v)
		}
		for _, c := range row.Counts {
			fmt.Fprintf(&buf, " %d", c)
		}
		buf.WriteString("\n")
	}
	n, err := io.WriteString(w, buf.String())
	return int64(n), err
}
