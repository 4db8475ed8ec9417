// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - find a specific item
//
// returns the node and its zero based in-order index, or nil and -1
func (tree *Tree[K, V]) Find(key K) (*Node[K, V], int) {
	index := 0
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			index += p.leftNodes + 1
			p = p.right
		default:
			return p, index + p.leftNodes
		}
	}
	return nil, -1
}

// Search - the value stored for a key
//
// the boolean separates an absent key from one stored with a zero value
func (tree *Tree[K, V]) Search(key K) (V, bool) {
	if node, _ := tree.Find(key); nil != node {
		return node.value, true
	}
	var zero V
	return zero, false
}

// Exists - true if the key is in the tree
func (tree *Tree[K, V]) Exists(key K) bool {
	node, _ := tree.Find(key)
	return nil != node
}

// Min - the lowest key and its value, false on an empty tree
func (tree *Tree[K, V]) Min() (K, V, bool) {
	return entry(tree.First())
}

// Max - the highest key and its value, false on an empty tree
func (tree *Tree[K, V]) Max() (K, V, bool) {
	return entry(tree.Last())
}

func entry[K any, V any](node *Node[K, V]) (K, V, bool) {
	if nil == node {
		var zeroKey K
		var zeroValue V
		return zeroKey, zeroValue, false
	}
	return node.key, node.value, true
}
