// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/balance"
)

// factor change at a node when one of its sub-trees loses height
const (
	leftShrunk  = +1
	rightShrunk = -1
)

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or false if the key was
// not in the tree
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	node, _ := tree.Find(key)
	if nil == node {
		var zero V
		return zero, false
	}
	value := node.value
	tree.remove(node)
	return value, true
}

// DeleteMin - remove the item with the lowest key
func (tree *Tree[K, V]) DeleteMin() (K, V, bool) {
	return tree.removeEntry(tree.First())
}

// DeleteMax - remove the item with the highest key
func (tree *Tree[K, V]) DeleteMax() (K, V, bool) {
	return tree.removeEntry(tree.Last())
}

func (tree *Tree[K, V]) removeEntry(node *Node[K, V]) (K, V, bool) {
	if nil == node {
		var zeroKey K
		var zeroValue V
		return zeroKey, zeroValue, false
	}
	key, value := node.key, node.value
	tree.remove(node)
	return key, value, true
}

// unlink a node and rebalance
//
// the node is spliced out rather than having its content overwritten
// by the successor, so other nodes never change identity
func (tree *Tree[K, V]) remove(q *Node[K, V]) {
	parent := q.up
	left := q.left
	right := q.right

	switch {
	case nil == left || nil == right:
		// zero or one child: the child (possibly nil) takes the
		// place of q and keeps its own balance factor
		child := left
		if nil == child {
			child = right
		}
		delta := rightShrunk
		if nil != parent && parent.left == q {
			delta = leftShrunk
		}
		tree.removed(q)
		tree.replace(parent, q, child)
		if nil != parent {
			tree.deleteBalance(parent, delta)
		}

	case nil == right.left:
		// the successor is the right child: it keeps its own
		// right sub-tree, which is now one level shorter than the
		// right sub-tree of q was
		successor := right
		tree.removed(successor)

		successor.setLeft(left)
		successor.leftNodes = q.leftNodes
		successor.balance = q.balance
		tree.replace(parent, q, successor)
		tree.deleteBalance(successor, rightShrunk)

	default:
		// the successor is deeper: detach it from its parent and
		// move it into the place of q
		successor := right.first()
		successorParent := successor.up
		tree.removed(successor)

		successorParent.setLeft(successor.right)

		successor.setLeft(left)
		successor.setRight(right)
		successor.leftNodes = q.leftNodes
		successor.rightNodes = q.rightNodes
		successor.balance = q.balance
		tree.replace(parent, q, successor)
		tree.deleteBalance(successorParent, leftShrunk)
	}
}

// update the node counts of every ancestor of a node about to be
// unlinked
func (tree *Tree[K, V]) removed(n *Node[K, V]) {
	for p := n; nil != p.up; p = p.up {
		if p.up.left == p {
			p.up.leftNodes -= 1
		} else {
			p.up.rightNodes -= 1
		}
	}
	tree.count -= 1
}

// delete: walk up from the node whose sub-tree lost height
//
// Unlike insertBalance a zero factor means the sub-tree became
// shorter, so the walk continues.  A single rotation whose new top
// node is left non-zero has kept the height and ends the walk; one
// that leaves it balanced has lost a level and the walk continues
// from the new top.
func (tree *Tree[K, V]) deleteBalance(node *Node[K, V], delta int) {
	for nil != node {
		node.balance += delta

		switch node.balance {
		case balance.LeftHeavy, balance.RightHeavy:
			// was balanced: height unchanged
			return
		case +2:
			if node.right.balance >= balance.Balanced {
				node = tree.rotateLeft(node)
				if balance.LeftHeavy == node.balance {
					return
				}
			} else {
				node = tree.rotateRightLeft(node)
			}
		case -2:
			if node.left.balance <= balance.Balanced {
				node = tree.rotateRight(node)
				if balance.RightHeavy == node.balance {
					return
				}
			} else {
				node = tree.rotateLeftRight(node)
			}
		}

		// this sub-tree is one level shorter, tell the parent
		parent := node.up
		if nil != parent {
			if parent.left == node {
				delta = leftShrunk
			} else {
				delta = rightShrunk
			}
		}
		node = parent
	}
}
