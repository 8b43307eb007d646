// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adt

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArraySeqGrowth(t *testing.T) {
	var s ArraySeq[int]
	assert.Equal(t, 0, s.Cap())
	var caps []int
	for i := range 9 {
		require.NoError(t, s.Insert(i, 0))
		assert.GreaterOrEqual(t, s.Cap(), s.Len())
		if len(caps) == 0 || caps[len(caps)-1] != s.Cap() {
			caps = append(caps, s.Cap())
		}
	}
	assert.Equal(t, []int{1, 2, 4, 8, 16}, caps)
	assert.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1, 0}, values[int](&s))

	// Erasing never shrinks the buffer.
	for !s.Empty() {
		require.NoError(t, s.Erase(s.Len()-1))
	}
	assert.Equal(t, 16, s.Cap())
}

func TestArraySeqSorts(t *testing.T) {
	for _, tt := range []struct {
		name string
		sort func(*ArraySeq[int])
	}{
		{"QuickSort", (*ArraySeq[int]).QuickSort},
		{"MergeSort", (*ArraySeq[int]).MergeSort},
		{"QuickSortRandPivot", (*ArraySeq[int]).QuickSortRandPivot},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var s ArraySeq[int]
			load(t, &s, 4, 3, 2, 1)
			tt.sort(&s)
			assert.Equal(t, "1, 2, 3, 4", s.String())

			// Sorted and reverse-sorted input, the quick sort worst case.
			s.Clear()
			for i := range 2000 {
				load(t, &s, i)
			}
			tt.sort(&s)
			assert.True(t, slices.IsSorted(values[int](&s)))
			s.Clear()
			for i := range 2000 {
				load(t, &s, 2000-i)
			}
			tt.sort(&s)
			assert.True(t, slices.IsSorted(values[int](&s)))
		})
	}
}

func TestArraySeqFuncRandPivot(t *testing.T) {
	s := NewArraySeqFunc(func(a, b string) int { return intCmp(len(a), len(b)) })
	load(t, s, "ccc", "a", "dddd", "bb", "")
	s.QuickSortRandPivot()
	assert.Equal(t, ", a, bb, ccc, dddd", s.String())
}

func TestArraySeqQuickSortRandPivotShuffled(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	var s ArraySeq[int]
	for range 500 {
		load(t, &s, r.IntN(100))
	}
	want := values[int](&s)
	slices.Sort(want)
	s.QuickSortRandPivot()
	assert.Equal(t, want, values[int](&s))
}

func TestArraySeqCopyMove(t *testing.T) {
	var a ArraySeq[int]
	load(t, &a, 1, 2, 3)

	b := a.Clone()
	require.NoError(t, b.Set(0, 100))
	assert.Equal(t, "1, 2, 3", a.String())
	assert.Equal(t, "100, 2, 3", b.String())

	var c ArraySeq[int]
	load(t, &c, 9, 9)
	c.CopyFrom(&a)
	assert.Equal(t, "1, 2, 3", c.String())
	require.NoError(t, c.Erase(0))
	assert.Equal(t, 3, a.Len())

	a.CopyFrom(&a)
	assert.Equal(t, "1, 2, 3", a.String())
	a.MoveFrom(&a)
	assert.Equal(t, "1, 2, 3", a.String())

	var d ArraySeq[int]
	load(t, &d, 7)
	d.MoveFrom(&a)
	assert.Equal(t, "1, 2, 3", d.String())
	assert.True(t, a.Empty())
	assert.Equal(t, 0, a.Cap())

	// The source stays usable.
	load(t, &a, 5)
	assert.Equal(t, "5", a.String())
	assert.Equal(t, "1, 2, 3", d.String())
}

func TestArraySeqFuncCopyMove(t *testing.T) {
	desc := func(a, b int) int { return intCmp(b, a) }
	a := NewArraySeqFunc(desc)
	load(t, a, 1, 3, 2)

	b := a.Clone()
	b.Sort()
	assert.Equal(t, "3, 2, 1", b.String())
	assert.Equal(t, "1, 3, 2", a.String())

	c := NewArraySeqFunc(intCmp)
	c.MoveFrom(a)
	assert.True(t, a.Empty())
	c.MergeSort()
	assert.Equal(t, "3, 2, 1", c.String())
	assert.True(t, c.Contains(2))
	assert.False(t, c.Contains(4))
}
