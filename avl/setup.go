// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/ordered"
)

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	root    *Node[K, V]
	count   int
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
		root:    nil,
		count:   0,
		compare: compare,
	}, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Clear - drop all nodes
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.count = 0
}

// Height - number of nodes on the longest path from the root
//
// follows the taller side at each node so it costs O(log n)
func (tree *Tree[K, V]) Height() int {
	h := 0
	for p := tree.root; nil != p; h += 1 {
		if p.balance > 0 {
			p = p.right
		} else {
			p = p.left
		}
	}
	return h
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node[K, V]) Balance() int {
	return p.balance
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
