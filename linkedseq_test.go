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

// checkLinks verifies the count and tail of s against its chain.
func checkLinks[T any](t *testing.T, s *linkedSeq[T]) {
	t.Helper()
	n := 0
	var last *lnode[T]
	for x := s.head; x != nil; x = x.next {
		last = x
		n++
	}
	assert.Equal(t, s.count, n, "count")
	assert.Same(t, last, s.tail, "tail")
}

func TestLinkedSeqSorts(t *testing.T) {
	for _, tt := range []struct {
		name string
		sort func(*LinkedSeq[int])
	}{
		{"MergeSort", (*LinkedSeq[int]).MergeSort},
		{"QuickSort", (*LinkedSeq[int]).QuickSort},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var s LinkedSeq[int]
			load(t, &s, 4, 3, 2, 1)
			tt.sort(&s)
			assert.Equal(t, "1, 2, 3, 4", s.String())
			checkLinks(t, &s.linkedSeq)

			r := rand.New(rand.NewPCG(5, 6))
			for _, n := range []int{2, 3, 7, 64, 1001} {
				s.Clear()
				for range n {
					load(t, &s, r.IntN(n))
				}
				want := values[int](&s)
				slices.Sort(want)
				tt.sort(&s)
				assert.Equal(t, want, values[int](&s), "n=%d", n)
				checkLinks(t, &s.linkedSeq)
			}
		})
	}
}

func TestLinkedSeqEdits(t *testing.T) {
	var s LinkedSeq[string]
	load(t, &s, "b", "d")
	require.NoError(t, s.Insert("a", 0))
	require.NoError(t, s.Insert("c", 2))
	require.NoError(t, s.Insert("e", 4))
	checkLinks(t, &s.linkedSeq)
	assert.Equal(t, "a, b, c, d, e", s.String())

	require.NoError(t, s.Set(4, "E"))
	v, err := s.At(4)
	require.NoError(t, err)
	assert.Equal(t, "E", v)

	require.NoError(t, s.Erase(4))
	checkLinks(t, &s.linkedSeq)
	require.NoError(t, s.Erase(0))
	checkLinks(t, &s.linkedSeq)
	require.NoError(t, s.Erase(1))
	checkLinks(t, &s.linkedSeq)
	assert.Equal(t, "b, d", s.String())

	require.NoError(t, s.Erase(1))
	require.NoError(t, s.Erase(0))
	checkLinks(t, &s.linkedSeq)
	assert.Nil(t, s.head)
	assert.Nil(t, s.tail)
}

func TestLinkedSeqCopyMove(t *testing.T) {
	var a LinkedSeq[int]
	load(t, &a, 3, 1, 2)

	b := a.Clone()
	b.Sort()
	assert.Equal(t, "1, 2, 3", b.String())
	assert.Equal(t, "3, 1, 2", a.String())
	for x, y := a.head, b.head; x != nil; x, y = x.next, y.next {
		assert.NotSame(t, x, y)
	}

	a.CopyFrom(&a)
	a.MoveFrom(&a)
	assert.Equal(t, "3, 1, 2", a.String())
	checkLinks(t, &a.linkedSeq)

	var c LinkedSeq[int]
	load(t, &c, 8, 9)
	c.CopyFrom(&b)
	assert.Equal(t, "1, 2, 3", c.String())
	checkLinks(t, &c.linkedSeq)

	var d LinkedSeq[int]
	d.MoveFrom(&a)
	assert.Equal(t, "3, 1, 2", d.String())
	assert.True(t, a.Empty())
	checkLinks(t, &a.linkedSeq)
	load(t, &a, 4)
	assert.Equal(t, "4", a.String())
	assert.Equal(t, 3, d.Len())
}

func TestLinkedSeqFunc(t *testing.T) {
	byLen := func(a, b string) int { return intCmp(len(a), len(b)) }
	s := NewLinkedSeqFunc(byLen)
	load(t, s, "xyz", "ab", "q", "mn")
	assert.True(t, s.Contains("zz")) // equal length counts as equal
	assert.False(t, s.Contains("wxyz"))

	c := s.Clone()
	c.MergeSort()
	assert.Equal(t, "q, ab, mn, xyz", c.String())

	s.QuickSort()
	assert.Equal(t, 4, s.Len())
	checkLinks(t, &s.linkedSeq)
	first, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, "q", first)
	last, err := s.At(3)
	require.NoError(t, err)
	assert.Equal(t, "xyz", last)

	m := NewLinkedSeqFunc(byLen)
	m.MoveFrom(c)
	assert.True(t, c.Empty())
	assert.Equal(t, "q, ab, mn, xyz", m.String())
}
