// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adt

import (
	"cmp"
	"iter"
)

// A LinkedSeq is a sequence stored in a singly linked list,
// ordered according to T's standard Go ordering.
// The zero value of a LinkedSeq is an empty LinkedSeq ready to use.
type LinkedSeq[T cmp.Ordered] struct {
	linkedSeq[T]
}

// A LinkedSeqFunc is a LinkedSeq ordered by a caller-supplied comparison.
// Use [NewLinkedSeqFunc] to create one.
type LinkedSeqFunc[T any] struct {
	linkedSeq[T]
	cmp func(T, T) int
}

// NewLinkedSeqFunc returns an empty LinkedSeqFunc ordered by cmp,
// which must define a total order consistent with equality.
func NewLinkedSeqFunc[T any](cmp func(T, T) int) *LinkedSeqFunc[T] {
	return &LinkedSeqFunc[T]{cmp: cmp}
}

type linkedSeq[T any] struct {
	head  *lnode[T]
	tail  *lnode[T]
	count int
}

// An lnode is a node in the list.
// Each node is reachable from exactly one place:
// the list head or its predecessor's next.
type lnode[T any] struct {
	val  T
	next *lnode[T]
}

func (s *linkedSeq[T]) Len() int {
	return s.count
}

func (s *linkedSeq[T]) Empty() bool {
	return s.count == 0
}

// node returns the node at index i, which must be in range.
func (s *linkedSeq[T]) node(i int) *lnode[T] {
	if i == s.count-1 {
		return s.tail
	}
	x := s.head
	for ; i > 0; i-- {
		x = x.next
	}
	return x
}

// At returns the element at index i.
func (s *linkedSeq[T]) At(i int) (T, error) {
	if i < 0 || i >= s.count {
		var zero T
		return zero, outOfRange("at", i, s.count)
	}
	return s.node(i).val, nil
}

// Set replaces the element at index i.
func (s *linkedSeq[T]) Set(i int, v T) error {
	if i < 0 || i >= s.count {
		return outOfRange("set", i, s.count)
	}
	s.node(i).val = v
	return nil
}

// Insert inserts v before index i. i may equal Len, which appends.
func (s *linkedSeq[T]) Insert(v T, i int) error {
	if i < 0 || i > s.count {
		return outOfRange("insert", i, s.count)
	}
	x := &lnode[T]{val: v}
	if i == 0 {
		x.next = s.head
		s.head = x
		if s.tail == nil {
			s.tail = x
		}
	} else {
		prev := s.node(i - 1)
		x.next = prev.next
		prev.next = x
		if prev == s.tail {
			s.tail = x
		}
	}
	s.count++
	return nil
}

func (s *linkedSeq[T]) push(v T) {
	x := &lnode[T]{val: v}
	if s.tail == nil {
		s.head = x
	} else {
		s.tail.next = x
	}
	s.tail = x
	s.count++
}

// Erase removes the element at index i.
func (s *linkedSeq[T]) Erase(i int) error {
	if i < 0 || i >= s.count {
		return outOfRange("erase", i, s.count)
	}
	if i == 0 {
		x := s.head
		s.head = x.next
		x.next = nil
		if s.head == nil {
			s.tail = nil
		}
	} else {
		prev := s.node(i - 1)
		x := prev.next
		prev.next = x.next
		x.next = nil
		if x == s.tail {
			s.tail = prev
		}
	}
	s.count--
	return nil
}

// Clear removes all elements.
func (s *linkedSeq[T]) Clear() {
	*s = linkedSeq[T]{}
}

// All returns an iterator over the indexes and elements of s, in order.
// s must not be modified during the iteration.
func (s *linkedSeq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for x := s.head; x != nil; x = x.next {
			if !yield(i, x.val) {
				return
			}
			i++
		}
	}
}

// String formats the elements as a comma-and-space separated list.
func (s *linkedSeq[T]) String() string {
	return render(s.All())
}

func (s *linkedSeq[T]) clone() linkedSeq[T] {
	var c linkedSeq[T]
	for x := s.head; x != nil; x = x.next {
		c.push(x.val)
	}
	return c
}

func (s *linkedSeq[T]) contains(v T, cmp func(T, T) int) bool {
	for x := s.head; x != nil; x = x.next {
		if cmp(x.val, v) == 0 {
			return true
		}
	}
	return false
}

func (s *linkedSeq[T]) mergeSort(cmp func(T, T) int) {
	if s.count <= 1 {
		return
	}
	s.head, s.tail = mergeSortList(s.head, s.count, cmp)
}

func (s *linkedSeq[T]) quickSort(cmp func(T, T) int) {
	if s.count <= 1 {
		return
	}
	s.head, s.tail = quickSortList(s.head, s.count, cmp)
}

// mergeSortList sorts the n-node list starting at head by relinking its nodes
// and returns the first and last node of the result.
// The list must be terminated by a nil next.
func mergeSortList[T any](head *lnode[T], n int, cmp func(T, T) int) (first, last *lnode[T]) {
	if n <= 1 {
		return head, head
	}
	mid := (n + 1) / 2
	x := head
	for i := 1; i < mid; i++ {
		x = x.next
	}
	right := x.next
	x.next = nil

	left, _ := mergeSortList(head, mid, cmp)
	right, _ = mergeSortList(right, n-mid, cmp)
	return mergeLists(left, right, cmp)
}

// mergeLists merges two sorted lists, taking from a on ties.
func mergeLists[T any](a, b *lnode[T], cmp func(T, T) int) (first, last *lnode[T]) {
	var front lnode[T]
	t := &front
	for a != nil && b != nil {
		if cmp(a.val, b.val) <= 0 {
			t.next, a = a, a.next
		} else {
			t.next, b = b, b.next
		}
		t = t.next
	}
	if a != nil {
		t.next = a
	} else {
		t.next = b
	}
	for t.next != nil {
		t = t.next
	}
	return front.next, t
}

// quickSortList sorts the n-node list starting at head around head as pivot
// and returns the first and last node of the result.
// Partitioning relinks nodes into two lists, preserving their relative order.
func quickSortList[T any](head *lnode[T], n int, cmp func(T, T) int) (first, last *lnode[T]) {
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		head.next = nil
		return head, head
	}

	pivot := head
	var le, leTail, gt, gtTail *lnode[T]
	nle, ngt := 0, 0
	for x := pivot.next; x != nil; {
		next := x.next
		x.next = nil
		if cmp(x.val, pivot.val) <= 0 {
			if leTail == nil {
				le = x
			} else {
				leTail.next = x
			}
			leTail = x
			nle++
		} else {
			if gtTail == nil {
				gt = x
			} else {
				gtTail.next = x
			}
			gtTail = x
			ngt++
		}
		x = next
	}
	pivot.next = nil

	le, leTail = quickSortList(le, nle, cmp)
	gt, gtTail = quickSortList(gt, ngt, cmp)

	first, last = pivot, pivot
	if le != nil {
		leTail.next = pivot
		first = le
	}
	if gt != nil {
		pivot.next = gt
		last = gtTail
	}
	return first, last
}

// Contains reports whether v is an element of s,
// comparing with cmp.Compare, so NaN matches NaN.
func (s *LinkedSeq[T]) Contains(v T) bool {
	return s.contains(v, cmp.Compare[T])
}

// Sort sorts s in non-decreasing order using [LinkedSeq.MergeSort].
func (s *LinkedSeq[T]) Sort() {
	s.MergeSort()
}

// MergeSort sorts s in non-decreasing order by relinking its nodes.
// Equal elements keep their relative order.
func (s *LinkedSeq[T]) MergeSort() {
	s.mergeSort(cmp.Compare[T])
}

// QuickSort sorts s in non-decreasing order by relinking its nodes,
// using the first node of each sublist as the pivot.
func (s *LinkedSeq[T]) QuickSort() {
	s.quickSort(cmp.Compare[T])
}

// Clone returns a copy of s that shares no nodes with it.
func (s *LinkedSeq[T]) Clone() *LinkedSeq[T] {
	return &LinkedSeq[T]{s.clone()}
}

// CopyFrom replaces the contents of s with a copy of src.
func (s *LinkedSeq[T]) CopyFrom(src *LinkedSeq[T]) {
	if s == src {
		return
	}
	s.linkedSeq = src.clone()
}

// MoveFrom transfers the nodes of src to s, leaving src empty.
func (s *LinkedSeq[T]) MoveFrom(src *LinkedSeq[T]) {
	if s == src {
		return
	}
	s.linkedSeq, src.linkedSeq = src.linkedSeq, linkedSeq[T]{}
}

func (s *LinkedSeqFunc[T]) Contains(v T) bool {
	return s.contains(v, s.cmp)
}

// Sort sorts s using [LinkedSeqFunc.MergeSort].
func (s *LinkedSeqFunc[T]) Sort() {
	s.MergeSort()
}

func (s *LinkedSeqFunc[T]) MergeSort() {
	s.mergeSort(s.cmp)
}

func (s *LinkedSeqFunc[T]) QuickSort() {
	s.quickSort(s.cmp)
}

func (s *LinkedSeqFunc[T]) Clone() *LinkedSeqFunc[T] {
	return &LinkedSeqFunc[T]{s.clone(), s.cmp}
}

// CopyFrom replaces the contents and comparison of s with those of src.
func (s *LinkedSeqFunc[T]) CopyFrom(src *LinkedSeqFunc[T]) {
	if s == src {
		return
	}
	s.linkedSeq, s.cmp = src.clone(), src.cmp
}

// MoveFrom transfers the nodes of src to s, leaving src empty.
// src keeps its comparison.
func (s *LinkedSeqFunc[T]) MoveFrom(src *LinkedSeqFunc[T]) {
	if s == src {
		return
	}
	s.linkedSeq, src.linkedSeq = src.linkedSeq, linkedSeq[T]{}
	s.cmp = src.cmp
}
