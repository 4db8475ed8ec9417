// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlrec

func (tree *Tree[K, V]) find(key K) *node[K, V] {
	n := tree.root
	for nil != n {
		switch c := tree.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Search - the value stored for a key
//
// the boolean separates an absent key from one stored with a zero value
func (tree *Tree[K, V]) Search(key K) (V, bool) {
	if n := tree.find(key); nil != n {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Exists - true if the key is in the tree
func (tree *Tree[K, V]) Exists(key K) bool {
	return nil != tree.find(key)
}

// Min - the lowest key and its value, false on an empty tree
func (tree *Tree[K, V]) Min() (K, V, bool) {
	n := tree.root
	if nil == n {
		return empty[K, V]()
	}
	for nil != n.left {
		n = n.left
	}
	return n.key, n.value, true
}

// Max - the highest key and its value, false on an empty tree
func (tree *Tree[K, V]) Max() (K, V, bool) {
	n := tree.root
	if nil == n {
		return empty[K, V]()
	}
	for nil != n.right {
		n = n.right
	}
	return n.key, n.value, true
}

// Get - the entry at a zero based in-order index
//
// false if the index is out of range
func (tree *Tree[K, V]) Get(index int) (K, V, bool) {
	if index < 0 || index >= size(tree.root) {
		return empty[K, V]()
	}
	n := tree.root
	for {
		l := size(n.left)
		switch {
		case index < l:
			n = n.left
		case index > l:
			index -= l + 1
			n = n.right
		default:
			return n.key, n.value, true
		}
	}
}

// Index - the zero based in-order index of key, or -1 if absent
func (tree *Tree[K, V]) Index(key K) int {
	index := 0
	n := tree.root
	for nil != n {
		switch c := tree.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			index += size(n.left) + 1
			n = n.right
		default:
			return index + size(n.left)
		}
	}
	return -1
}
