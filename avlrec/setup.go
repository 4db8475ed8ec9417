// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlrec

import (
	"github.com/bitmark-inc/avltree/ordered"
)

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	root    *node[K, V]
	compare ordered.Compare[K]
}

// New - create an initially empty tree
//
// a nil compare selects the natural order of the key type, and fails
// if the key type has none
func New[K any, V any](compare ordered.Compare[K]) (*Tree[K, V], error) {
	compare, err := ordered.Resolve(compare)
	if nil != err {
		return nil, err
	}
	return &Tree[K, V]{
		compare: compare,
	}, nil
}

// a tree sharing the comparator of this one
func (tree *Tree[K, V]) with(root *node[K, V]) *Tree[K, V] {
	return &Tree[K, V]{
		root:    root,
		compare: tree.compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return size(tree.root)
}

// Height - number of nodes on the longest path from the root
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// Clear - drop all nodes
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
}
