// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[K any, V any] struct {
	left       *Node[K, V] // left sub-tree
	right      *Node[K, V] // right sub-tree
	up         *Node[K, V] // points to parent node, not owned
	key        K           // key part for ordering
	value      V           // value part for data storage
	balance    int         // -1, 0, +1
	leftNodes  int         // count of nodes in left sub-tree
	rightNodes int         // count of nodes in right sub-tree
}

// allocate a new detached node
func newNode[K any, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:   key,
		value: value,
	}
}

// number of nodes in a sub-tree
func (p *Node[K, V]) size() int {
	if nil == p {
		return 0
	}
	return 1 + p.leftNodes + p.rightNodes
}

// attach child as the left sub-tree of p
//
// all child links are written through setLeft/setRight so that the up
// pointer always changes in the same step
func (p *Node[K, V]) setLeft(child *Node[K, V]) {
	p.left = child
	if nil != child {
		child.up = p
	}
}

// attach child as the right sub-tree of p
func (p *Node[K, V]) setRight(child *Node[K, V]) {
	p.right = child
	if nil != child {
		child.up = p
	}
}

// put n in the place that old occupies below parent, or at the root
// if parent is nil
func (tree *Tree[K, V]) replace(parent *Node[K, V], old *Node[K, V], n *Node[K, V]) {
	switch {
	case nil == parent:
		tree.root = n
		if nil != n {
			n.up = nil
		}
	case parent.left == old:
		parent.setLeft(n)
	default:
		parent.setRight(n)
	}
}
