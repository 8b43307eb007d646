// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adt

import (
	"cmp"
	"iter"
	"math/rand/v2"
)

// An ArraySeq is a sequence stored in a resizable array,
// ordered according to T's standard Go ordering.
// The zero value of an ArraySeq is an empty ArraySeq ready to use.
type ArraySeq[T cmp.Ordered] struct {
	arraySeq[T]
}

// An ArraySeqFunc is an ArraySeq ordered by a caller-supplied comparison.
// Use [NewArraySeqFunc] to create one.
type ArraySeqFunc[T any] struct {
	arraySeq[T]
	cmp func(T, T) int
}

// NewArraySeqFunc returns an empty ArraySeqFunc ordered by cmp,
// which must define a total order consistent with equality.
func NewArraySeqFunc[T any](cmp func(T, T) int) *ArraySeqFunc[T] {
	return &ArraySeqFunc[T]{cmp: cmp}
}

// arraySeq holds the elements in elems[:len(elems)].
// cap(elems) is the capacity and only grows by doubling.
type arraySeq[T any] struct {
	elems []T
}

func (s *arraySeq[T]) Len() int {
	return len(s.elems)
}

func (s *arraySeq[T]) Empty() bool {
	return len(s.elems) == 0
}

// Cap returns the number of elements s can hold before it must grow.
func (s *arraySeq[T]) Cap() int {
	return cap(s.elems)
}

// At returns the element at index i.
func (s *arraySeq[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.elems) {
		var zero T
		return zero, outOfRange("at", i, len(s.elems))
	}
	return s.elems[i], nil
}

// Set replaces the element at index i.
func (s *arraySeq[T]) Set(i int, v T) error {
	if i < 0 || i >= len(s.elems) {
		return outOfRange("set", i, len(s.elems))
	}
	s.elems[i] = v
	return nil
}

// Insert inserts v before index i, shifting later elements up by one.
// i may equal Len, which appends.
func (s *arraySeq[T]) Insert(v T, i int) error {
	n := len(s.elems)
	if i < 0 || i > n {
		return outOfRange("insert", i, n)
	}
	if n == cap(s.elems) {
		s.grow()
	}
	s.elems = s.elems[:n+1]
	copy(s.elems[i+1:], s.elems[i:n])
	s.elems[i] = v
	return nil
}

func (s *arraySeq[T]) push(v T) {
	if len(s.elems) == cap(s.elems) {
		s.grow()
	}
	s.elems = append(s.elems, v)
}

// grow doubles the capacity, starting from 1.
func (s *arraySeq[T]) grow() {
	c := 2 * cap(s.elems)
	if c == 0 {
		c = 1
	}
	elems := make([]T, len(s.elems), c)
	copy(elems, s.elems)
	s.elems = elems
}

// Erase removes the element at index i, shifting later elements down by one.
func (s *arraySeq[T]) Erase(i int) error {
	n := len(s.elems)
	if i < 0 || i >= n {
		return outOfRange("erase", i, n)
	}
	copy(s.elems[i:], s.elems[i+1:])
	var zero T
	s.elems[n-1] = zero
	s.elems = s.elems[:n-1]
	return nil
}

// Clear removes all elements and releases the storage.
func (s *arraySeq[T]) Clear() {
	s.elems = nil
}

// All returns an iterator over the indexes and elements of s, in order.
// s must not be modified during the iteration.
func (s *arraySeq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// String formats the elements as a comma-and-space separated list.
func (s *arraySeq[T]) String() string {
	return render(s.All())
}

func (s *arraySeq[T]) clone() arraySeq[T] {
	if s.elems == nil {
		return arraySeq[T]{}
	}
	elems := make([]T, len(s.elems), cap(s.elems))
	copy(elems, s.elems)
	return arraySeq[T]{elems}
}

func (s *arraySeq[T]) contains(v T, cmp func(T, T) int) bool {
	for _, x := range s.elems {
		if cmp(x, v) == 0 {
			return true
		}
	}
	return false
}

func (s *arraySeq[T]) mergeSort(cmp func(T, T) int) {
	if len(s.elems) <= 1 {
		return
	}
	scratch := make([]T, len(s.elems))
	mergeSortRange(s.elems, scratch, 0, len(s.elems)-1, cmp)
}

// mergeSortRange sorts a[start:end+1] using scratch[start:end+1] as the merge buffer.
func mergeSortRange[T any](a, scratch []T, start, end int, cmp func(T, T) int) {
	if start >= end {
		return
	}
	mid := (start + end) / 2
	mergeSortRange(a, scratch, start, mid, cmp)
	mergeSortRange(a, scratch, mid+1, end, cmp)

	buf := scratch[start : end+1]
	i, j, k := start, mid+1, 0
	for i <= mid && j <= end {
		// Ties take from the left run.
		if cmp(a[i], a[j]) <= 0 {
			buf[k] = a[i]
			i++
		} else {
			buf[k] = a[j]
			j++
		}
		k++
	}
	k += copy(buf[k:], a[i:mid+1])
	copy(buf[k:], a[j:end+1])
	copy(a[start:end+1], buf)
}

func (s *arraySeq[T]) quickSort(cmp func(T, T) int, pick func(lo, hi int) int) {
	quickSortRange(s.elems, 0, len(s.elems)-1, cmp, pick)
}

// quickSortRange sorts a[start:end+1] by Lomuto partitioning around a[start].
// If pick is non-nil, the element at index pick(start, end) is first
// swapped into a[start] to serve as the pivot.
func quickSortRange[T any](a []T, start, end int, cmp func(T, T) int, pick func(lo, hi int) int) {
	if start >= end {
		return
	}
	if pick != nil {
		p := pick(start, end)
		a[start], a[p] = a[p], a[start]
	}
	pivot := a[start]
	last := start
	for i := start + 1; i <= end; i++ {
		if cmp(a[i], pivot) <= 0 {
			last++
			a[i], a[last] = a[last], a[i]
		}
	}
	a[start], a[last] = a[last], a[start]
	quickSortRange(a, start, last-1, cmp, pick)
	quickSortRange(a, last+1, end, cmp, pick)
}

func randPivot(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}

// Contains reports whether v is an element of s,
// comparing with cmp.Compare, so NaN matches NaN.
func (s *ArraySeq[T]) Contains(v T) bool {
	return s.contains(v, cmp.Compare[T])
}

// Sort sorts s in non-decreasing order using [ArraySeq.QuickSort].
func (s *ArraySeq[T]) Sort() {
	s.QuickSort()
}

// MergeSort sorts s in non-decreasing order.
// Equal elements keep their relative order.
func (s *ArraySeq[T]) MergeSort() {
	s.mergeSort(cmp.Compare[T])
}

// QuickSort sorts s in non-decreasing order, using the first
// element of each range as the pivot.
func (s *ArraySeq[T]) QuickSort() {
	s.quickSort(cmp.Compare[T], nil)
}

// QuickSortRandPivot is like QuickSort but chooses each pivot uniformly at random,
// avoiding the quadratic case on already sorted input.
func (s *ArraySeq[T]) QuickSortRandPivot() {
	s.quickSort(cmp.Compare[T], randPivot)
}

// Clone returns a copy of s that shares no storage with it.
func (s *ArraySeq[T]) Clone() *ArraySeq[T] {
	return &ArraySeq[T]{s.clone()}
}

// CopyFrom replaces the contents of s with a copy of src.
func (s *ArraySeq[T]) CopyFrom(src *ArraySeq[T]) {
	if s == src {
		return
	}
	s.arraySeq = src.clone()
}

// MoveFrom transfers the storage of src to s, leaving src empty.
func (s *ArraySeq[T]) MoveFrom(src *ArraySeq[T]) {
	if s == src {
		return
	}
	s.arraySeq, src.arraySeq = src.arraySeq, arraySeq[T]{}
}

func (s *ArraySeqFunc[T]) Contains(v T) bool {
	return s.contains(v, s.cmp)
}

// Sort sorts s using [ArraySeqFunc.QuickSort].
func (s *ArraySeqFunc[T]) Sort() {
	s.QuickSort()
}

func (s *ArraySeqFunc[T]) MergeSort() {
	s.mergeSort(s.cmp)
}

func (s *ArraySeqFunc[T]) QuickSort() {
	s.quickSort(s.cmp, nil)
}

func (s *ArraySeqFunc[T]) QuickSortRandPivot() {
	s.quickSort(s.cmp, randPivot)
}

// Clone returns a copy of s with the same comparison.
func (s *ArraySeqFunc[T]) Clone() *ArraySeqFunc[T] {
	return &ArraySeqFunc[T]{s.clone(), s.cmp}
}

// CopyFrom replaces the contents and comparison of s with those of src.
func (s *ArraySeqFunc[T]) CopyFrom(src *ArraySeqFunc[T]) {
	if s == src {
		return
	}
	s.arraySeq, s.cmp = src.clone(), src.cmp
}

// MoveFrom transfers the storage of src to s, leaving src empty.
// src keeps its comparison.
func (s *ArraySeqFunc[T]) MoveFrom(src *ArraySeqFunc[T]) {
	if s == src {
		return
	}
	s.arraySeq, src.arraySeq = src.arraySeq, arraySeq[T]{}
	s.cmp = src.cmp
}
