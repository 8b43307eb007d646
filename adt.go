// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adt implements in-memory sequences and ordered maps.
//
// [ArraySeq] and [LinkedSeq] are index-addressable sequences backed by a
// resizable array and a singly linked chain, each sortable in place with
// merge sort or quick sort. [AVLMap] is an ordered map kept balanced by
// AVL rotations.
//
// Every container comes in two forms. The plain form (ArraySeq[T],
// LinkedSeq[T], AVLMap[K, V]) is for cmp.Ordered types and its zero value
// is ready to use. The Func form (ArraySeqFunc, LinkedSeqFunc, AVLMapFunc)
// supports arbitrary element types and must be created with its New
// function, which takes the comparison.
//
// None of the containers are safe for concurrent use.
package adt

import (
	"iter"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is returned by positional sequence operations
	// given an index outside the valid range.
	ErrOutOfRange = errors.New("index out of range")

	// ErrKeyNotFound is returned by map lookups and erases of absent keys.
	ErrKeyNotFound = errors.New("key not found")
)

// A Sequence is an ordered, index-addressable collection.
type Sequence[T any] interface {
	Len() int
	Empty() bool
	At(i int) (T, error)
	Set(i int, v T) error
	Insert(v T, i int) error
	Erase(i int) error
	Contains(v T) bool
	Sort()
	MergeSort()
	QuickSort()
	All() iter.Seq2[int, T]
	String() string
}

// A Mapper is a key-ordered associative container.
type Mapper[K, V any] interface {
	Len() int
	Empty() bool
	At(key K) (V, error)
	Set(key K, val V) error
	Get(key K) (V, bool)
	Insert(key K, val V)
	Erase(key K) error
	Contains(key K) bool
	Height() int
	All() iter.Seq2[K, V]
	Scan(lo, hi K) iter.Seq2[K, V]
}

func outOfRange(op string, i, n int) error {
	return errors.Wrapf(ErrOutOfRange, "%s at %d, len %d", op, i, n)
}

func keyNotFound[K any](op string, key K) error {
	return errors.Wrapf(ErrKeyNotFound, "%s %v", op, key)
}
