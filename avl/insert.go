// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/balance"
)

// Insert - insert a new node into the tree, or overwrite the value of
// an existing key
//
// returns true if a node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	if nil == tree.root {
		tree.root = newNode(key, value)
		tree.count = 1
		return true
	}

	p := tree.root
	for {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			if nil == p.left {
				n := newNode(key, value)
				p.setLeft(n)
				tree.added(n)
				tree.insertBalance(p, balance.LeftHeavy)
				return true
			}
			p = p.left
		case c > 0:
			if nil == p.right {
				n := newNode(key, value)
				p.setRight(n)
				tree.added(n)
				tree.insertBalance(p, balance.RightHeavy)
				return true
			}
			p = p.right
		default:
			p.value = value
			return false
		}
	}
}

// update the node counts of every ancestor of a newly attached node
func (tree *Tree[K, V]) added(n *Node[K, V]) {
	for p := n; nil != p.up; p = p.up {
		if p.up.left == p {
			p.up.leftNodes += 1
		} else {
			p.up.rightNodes += 1
		}
	}
	tree.count += 1
}

// insert: walk up from the parent of a new leaf
//
// delta is the change to apply at node: -1 when its left sub-tree
// grew, +1 for the right.  Stops when a factor becomes zero, as the
// sub-tree height is unchanged, or after one rotation, which always
// restores the height the sub-tree had before the insert.
func (tree *Tree[K, V]) insertBalance(node *Node[K, V], delta int) {
	for nil != node {
		node.balance += delta

		switch node.balance {
		case balance.Balanced:
			return
		case +2:
			if balance.RightHeavy == node.right.balance {
				tree.rotateLeft(node)
			} else {
				tree.rotateRightLeft(node)
			}
			return
		case -2:
			if balance.LeftHeavy == node.left.balance {
				tree.rotateRight(node)
			} else {
				tree.rotateLeftRight(node)
			}
			return
		}

		// factor is now ±1: this sub-tree grew, tell the parent
		parent := node.up
		if nil != parent {
			if parent.left == node {
				delta = balance.LeftHeavy
			} else {
				delta = balance.RightHeavy
			}
		}
		node = parent
	}
}
