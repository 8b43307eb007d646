// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adt

import (
	"bytes"
	"cmp"
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// In-memory map stored as self-balancing AVL tree.
// See Lewis & Denenberg, Data Structures and Their Algorithms.
//
// Nodes carry no parent pointers. Insert and erase descend recursively
// and each level returns the possibly new root of its subtree, which the
// caller stores back into its child link.

// An AVLMap is a map[K]V ordered according to K's standard Go ordering.
// The zero value of an AVLMap is an empty AVLMap ready to use.
type AVLMap[K cmp.Ordered, V any] struct {
	avl[K, V]
}

// An AVLMapFunc is an AVLMap ordered by a caller-supplied comparison.
// Use [NewAVLMapFunc] to create one.
type AVLMapFunc[K, V any] struct {
	avl[K, V]
	cmp func(K, K) int
}

// NewAVLMapFunc returns an empty AVLMapFunc ordered by cmp,
// which must define a total order consistent with equality.
func NewAVLMapFunc[K, V any](cmp func(K, K) int) *AVLMapFunc[K, V] {
	return &AVLMapFunc[K, V]{cmp: cmp}
}

type avl[K, V any] struct {
	root  *anode[K, V]
	count int
}

// An anode is a node in the AVL tree.
// height is 1 for a leaf; an absent subtree has height 0.
type anode[K, V any] struct {
	left   *anode[K, V]
	right  *anode[K, V]
	height int
	key    K
	val    V
}

func (t *avl[K, V]) Len() int {
	return t.count
}

func (t *avl[K, V]) Empty() bool {
	return t.count == 0
}

// Height returns the height of the tree, 0 when empty.
func (t *avl[K, V]) Height() int {
	return t.root.safeHeight()
}

// Clear removes all entries.
func (t *avl[K, V]) Clear() {
	t.root = nil
	t.count = 0
}

func (x *anode[K, V]) safeHeight() int {
	if x == nil {
		return 0
	}
	return x.height
}

func (x *anode[K, V]) setHeight() {
	x.height = 1 + max(x.left.safeHeight(), x.right.safeHeight())
}

// balance returns height(left) - height(right).
func (x *anode[K, V]) balance() int {
	if x == nil {
		return 0
	}
	return x.left.safeHeight() - x.right.safeHeight()
}

// rotateRight rotates the subtree rooted at node x,
// turning (x (y a b) c) into (y a (x b c)), and returns y.
func (x *anode[K, V]) rotateRight() *anode[K, V] {
	y := x.left
	x.left = y.right
	y.right = x
	x.setHeight()
	y.setHeight()
	return y
}

// rotateLeft rotates the subtree rooted at node x,
// turning (x a (y b c)) into (y (x a b) c), and returns y.
func (x *anode[K, V]) rotateLeft() *anode[K, V] {
	y := x.right
	x.right = y.left
	y.left = x
	x.setHeight()
	y.setHeight()
	return y
}

// rebalance restores the AVL property at x, whose subtrees are
// valid AVL trees differing in height by at most 2, and returns
// the new root of the subtree.
func (x *anode[K, V]) rebalance() *anode[K, V] {
	switch bal := x.balance(); {
	case bal > 1:
		if x.left.balance() < 0 {
			x.left = x.left.rotateLeft()
		}
		return x.rotateRight()
	case bal < -1:
		if x.right.balance() > 0 {
			x.right = x.right.rotateRight()
		}
		return x.rotateLeft()
	}
	x.setHeight()
	return x
}

// insert adds a node for key below x and returns the new subtree root.
// Keys equal to x.key go right.
func insert[K, V any](x *anode[K, V], key K, val V, cmp func(K, K) int) *anode[K, V] {
	if x == nil {
		return &anode[K, V]{key: key, val: val, height: 1}
	}
	if cmp(key, x.key) < 0 {
		x.left = insert(x.left, key, val, cmp)
	} else {
		x.right = insert(x.right, key, val, cmp)
	}
	x.setHeight()
	return x.rebalance()
}

// erase removes the node for key, which must be present below x,
// and returns the new subtree root.
// A node with two children takes its in-order successor's key and value,
// and the successor is erased from the right subtree instead.
func erase[K, V any](x *anode[K, V], key K, cmp func(K, K) int) *anode[K, V] {
	if x == nil {
		return nil
	}
	switch c := cmp(key, x.key); {
	case c < 0:
		x.left = erase(x.left, key, cmp)
	case c > 0:
		x.right = erase(x.right, key, cmp)
	case x.left == nil:
		return x.right
	case x.right == nil:
		return x.left
	default:
		succ := x.right
		for succ.left != nil {
			succ = succ.left
		}
		x.key, x.val = succ.key, succ.val
		x.right = erase(x.right, succ.key, cmp)
	}
	x.setHeight()
	return x.rebalance()
}

func (t *avl[K, V]) insert(key K, val V, cmp func(K, K) int) {
	t.root = insert(t.root, key, val, cmp)
	t.count++
}

func (t *avl[K, V]) erase(key K, cmp func(K, K) int) {
	t.root = erase(t.root, key, cmp)
	t.count--
}

func (t *avl[K, V]) locate(key K, cmp func(K, K) int) *anode[K, V] {
	x := t.root
	for x != nil {
		c := cmp(key, x.key)
		if c == 0 {
			return x
		}
		if c < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	return nil
}

func (x *anode[K, V]) clone() *anode[K, V] {
	if x == nil {
		return nil
	}
	return &anode[K, V]{
		left:   x.left.clone(),
		right:  x.right.clone(),
		height: x.height,
		key:    x.key,
		val:    x.val,
	}
}

func (t *avl[K, V]) clone() avl[K, V] {
	return avl[K, V]{t.root.clone(), t.count}
}

// all yields the subtree rooted at x in order, reporting whether
// iteration should continue.
func (x *anode[K, V]) all(yield func(K, V) bool) bool {
	if x == nil {
		return true
	}
	return x.left.all(yield) && yield(x.key, x.val) && x.right.all(yield)
}

// scan is like all but skips subtrees that cannot hold keys in [lo, hi].
func (x *anode[K, V]) scan(lo, hi K, cmp func(K, K) int, yield func(K, V) bool) bool {
	if x == nil {
		return true
	}
	if cmp(lo, x.key) < 0 && !x.left.scan(lo, hi, cmp, yield) {
		return false
	}
	if cmp(lo, x.key) <= 0 && cmp(x.key, hi) <= 0 && !yield(x.key, x.val) {
		return false
	}
	if cmp(x.key, hi) < 0 {
		return x.right.scan(lo, hi, cmp, yield)
	}
	return true
}

// findKeys appends the keys k below x with lo ≤ k ≤ hi to keys, in order.
func findKeys[K, V any](x *anode[K, V], lo, hi K, cmp func(K, K) int, keys *arraySeq[K]) {
	if x == nil {
		return
	}
	if cmp(lo, x.key) < 0 {
		findKeys(x.left, lo, hi, cmp, keys)
	}
	if cmp(lo, x.key) <= 0 && cmp(x.key, hi) <= 0 {
		keys.push(x.key)
	}
	if cmp(x.key, hi) < 0 {
		findKeys(x.right, lo, hi, cmp, keys)
	}
}

func sortedKeys[K, V any](x *anode[K, V], keys *arraySeq[K]) {
	if x == nil {
		return
	}
	sortedKeys(x.left, keys)
	keys.push(x.key)
	sortedKeys(x.right, keys)
}

// All returns an iterator over the map t in key order.
// t must not be modified during the iteration.
func (t *avl[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.root.all(yield)
	}
}

// At returns the value for key, or ErrKeyNotFound.
func (m *AVLMap[K, V]) At(key K) (V, error) {
	x := m.get(key)
	if x == nil {
		var zero V
		return zero, keyNotFound("at", key)
	}
	return x.val, nil
}

// Get returns the value for key and whether it was present.
func (m *AVLMap[K, V]) Get(key K) (val V, ok bool) {
	x := m.get(key)
	if x == nil {
		return
	}
	return x.val, true
}

// Set replaces the value for an existing key.
// It does not change the shape of the tree.
func (m *AVLMap[K, V]) Set(key K, val V) error {
	x := m.get(key)
	if x == nil {
		return keyNotFound("set", key)
	}
	x.val = val
	return nil
}

// get descends with the same ordering Insert uses,
// so NaN keys are found where they were placed.
func (m *AVLMap[K, V]) get(key K) *anode[K, V] {
	if m == nil {
		return nil
	}
	return m.locate(key, cmp.Compare[K])
}

func (m *AVLMap[K, V]) Contains(key K) bool {
	return m.get(key) != nil
}

// Insert adds key with value val.
//
// The key must not already be present. Insert does not check:
// inserting a duplicate key leaves the map holding both entries,
// and which one lookups find is unspecified. Use Contains first
// when duplicates are possible.
func (m *AVLMap[K, V]) Insert(key K, val V) {
	m.insert(key, val, cmp.Compare[K])
}

// Erase removes key from the map.
// If key is not present, Erase returns ErrKeyNotFound and m is unchanged.
func (m *AVLMap[K, V]) Erase(key K) error {
	if !m.Contains(key) {
		return keyNotFound("erase", key)
	}
	m.erase(key, cmp.Compare[K])
	return nil
}

// FindKeys returns the keys k with k1 ≤ k ≤ k2 in ascending order.
func (m *AVLMap[K, V]) FindKeys(k1, k2 K) *ArraySeq[K] {
	keys := new(ArraySeq[K])
	findKeys(m.root, k1, k2, cmp.Compare[K], &keys.arraySeq)
	return keys
}

// SortedKeys returns all keys in ascending order.
func (m *AVLMap[K, V]) SortedKeys() *ArraySeq[K] {
	keys := new(ArraySeq[K])
	sortedKeys(m.root, &keys.arraySeq)
	return keys
}

// Scan returns an iterator over the map m
// limited to keys k satisfying lo ≤ k ≤ hi.
// m must not be modified during the iteration.
func (m *AVLMap[K, V]) Scan(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.root.scan(lo, hi, cmp.Compare[K], yield)
	}
}

// Clone returns a copy of m that shares no nodes with it.
func (m *AVLMap[K, V]) Clone() *AVLMap[K, V] {
	return &AVLMap[K, V]{m.clone()}
}

// CopyFrom replaces the contents of m with a copy of src.
func (m *AVLMap[K, V]) CopyFrom(src *AVLMap[K, V]) {
	if m == src {
		return
	}
	m.avl = src.clone()
}

// MoveFrom transfers the tree of src to m, leaving src empty.
func (m *AVLMap[K, V]) MoveFrom(src *AVLMap[K, V]) {
	if m == src {
		return
	}
	m.avl, src.avl = src.avl, avl[K, V]{}
}

// At returns the value for key, or ErrKeyNotFound.
func (m *AVLMapFunc[K, V]) At(key K) (V, error) {
	x := m.locate(key, m.cmp)
	if x == nil {
		var zero V
		return zero, keyNotFound("at", key)
	}
	return x.val, nil
}

func (m *AVLMapFunc[K, V]) Get(key K) (val V, ok bool) {
	x := m.locate(key, m.cmp)
	if x == nil {
		return
	}
	return x.val, true
}

func (m *AVLMapFunc[K, V]) Set(key K, val V) error {
	x := m.locate(key, m.cmp)
	if x == nil {
		return keyNotFound("set", key)
	}
	x.val = val
	return nil
}

func (m *AVLMapFunc[K, V]) Contains(key K) bool {
	return m.locate(key, m.cmp) != nil
}

// Insert adds key with value val. As with [AVLMap.Insert],
// the key must not already be present.
func (m *AVLMapFunc[K, V]) Insert(key K, val V) {
	m.insert(key, val, m.cmp)
}

func (m *AVLMapFunc[K, V]) Erase(key K) error {
	if !m.Contains(key) {
		return keyNotFound("erase", key)
	}
	m.erase(key, m.cmp)
	return nil
}

// FindKeys returns the keys k with k1 ≤ k ≤ k2 in ascending order.
// The result is ordered by the map's comparison.
func (m *AVLMapFunc[K, V]) FindKeys(k1, k2 K) *ArraySeqFunc[K] {
	keys := NewArraySeqFunc(m.cmp)
	findKeys(m.root, k1, k2, m.cmp, &keys.arraySeq)
	return keys
}

func (m *AVLMapFunc[K, V]) SortedKeys() *ArraySeqFunc[K] {
	keys := NewArraySeqFunc(m.cmp)
	sortedKeys(m.root, &keys.arraySeq)
	return keys
}

func (m *AVLMapFunc[K, V]) Scan(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.root.scan(lo, hi, m.cmp, yield)
	}
}

func (m *AVLMapFunc[K, V]) Clone() *AVLMapFunc[K, V] {
	return &AVLMapFunc[K, V]{m.clone(), m.cmp}
}

func (m *AVLMapFunc[K, V]) CopyFrom(src *AVLMapFunc[K, V]) {
	if m == src {
		return
	}
	m.avl, m.cmp = src.clone(), src.cmp
}

// MoveFrom transfers the tree of src to m, leaving src empty.
// src keeps its comparison.
func (m *AVLMapFunc[K, V]) MoveFrom(src *AVLMapFunc[K, V]) {
	if m == src {
		return
	}
	m.avl, src.avl = src.avl, avl[K, V]{}
	m.cmp = src.cmp
}

// check verifies the cached heights, the balance of every node,
// the key ordering, and the node count.
func (t *avl[K, V]) check(cmp func(K, K) int) error {
	n := 0
	var walk func(x *anode[K, V], lo, hi *K) error
	walk = func(x *anode[K, V], lo, hi *K) error {
		if x == nil {
			return nil
		}
		n++
		if lo != nil && cmp(*lo, x.key) >= 0 {
			return errors.Errorf("key %v not above %v", x.key, *lo)
		}
		if hi != nil && cmp(x.key, *hi) >= 0 {
			return errors.Errorf("key %v not below %v", x.key, *hi)
		}
		if err := walk(x.left, lo, &x.key); err != nil {
			return err
		}
		if err := walk(x.right, &x.key, hi); err != nil {
			return err
		}
		if h := 1 + max(x.left.safeHeight(), x.right.safeHeight()); x.height != h {
			return errors.Errorf("bad height at %v: have %d, want %d", x.key, x.height, h)
		}
		if b := x.balance(); b < -1 || b > 1 {
			return errors.Errorf("bad balance %d at %v", b, x.key)
		}
		return nil
	}
	if err := walk(t.root, nil, nil); err != nil {
		return err
	}
	if n != t.count {
		return errors.Errorf("count %d, but %d nodes reachable", t.count, n)
	}
	return nil
}

// Dump returns the tree as nested (height key:val left right) lists.
func (t *avl[K, V]) Dump() string {
	var buf bytes.Buffer
	var walk func(*anode[K, V])
	walk = func(x *anode[K, V]) {
		if x == nil {
			fmt.Fprintf(&buf, "nil")
			return
		}
		fmt.Fprintf(&buf, "(h%d %v:%v ", x.height, x.key, x.val)
		walk(x.left)
		fmt.Fprintf(&buf, " ")
		walk(x.right)
		fmt.Fprintf(&buf, ")")
	}
	walk(t.root)
	return buf.String()
}
