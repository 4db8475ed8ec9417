// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlrec

import (
	"github.com/bitmark-inc/avltree/balance"
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or false if the key was
// not in the tree
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	root, _, removed := tree.delete(tree.root, key)
	tree.root = root
	if nil == removed {
		var zero V
		return zero, false
	}
	return removed.value, true
}

// DeleteMin - remove the item with the lowest key
func (tree *Tree[K, V]) DeleteMin() (K, V, bool) {
	if nil == tree.root {
		return empty[K, V]()
	}
	root, removed, _ := deleteMin(tree.root)
	tree.root = root
	return removed.key, removed.value, true
}

// DeleteMax - remove the item with the highest key
func (tree *Tree[K, V]) DeleteMax() (K, V, bool) {
	if nil == tree.root {
		return empty[K, V]()
	}
	root, removed, _ := deleteMax(tree.root)
	tree.root = root
	return removed.key, removed.value, true
}

func empty[K any, V any]() (K, V, bool) {
	var zeroKey K
	var zeroValue V
	return zeroKey, zeroValue, false
}

// returns the new sub-tree root, whether its height shrank and a
// detached node holding the removed key and value (nil if absent)
func (tree *Tree[K, V]) delete(n *node[K, V], key K) (*node[K, V], bool, *node[K, V]) {
	if nil == n {
		return nil, false, nil
	}

	shrunk := false
	var removed *node[K, V]
	switch c := tree.compare(key, n.key); {
	case c < 0:
		n.left, shrunk, removed = tree.delete(n.left, key)
		if shrunk {
			n.balance += 1
		}
	case c > 0:
		n.right, shrunk, removed = tree.delete(n.right, key)
		if shrunk {
			n.balance -= 1
		}
	default:
		if nil == n.left || nil == n.right {
			child := n.left
			if nil == child {
				child = n.right
			}
			return child, true, n.detach()
		}

		// two children: take over the content of the successor,
		// which has at most one child
		var successor *node[K, V]
		n.right, successor, shrunk = deleteMin(n.right)
		n.key, successor.key = successor.key, n.key
		n.value, successor.value = successor.value, n.value
		removed = successor
		if shrunk {
			n.balance -= 1
		}
	}

	if nil == removed {
		return n, false, nil
	}
	n, shrunk = settle(n, shrunk)
	return n, shrunk, removed
}

// remove the leftmost node of a non-empty sub-tree
//
// returns the new sub-tree root, the detached node and whether the
// height shrank
func deleteMin[K any, V any](n *node[K, V]) (*node[K, V], *node[K, V], bool) {
	if nil == n {
		fault.Panicf("avlrec: deleteMin of an empty sub-tree")
	}
	if nil == n.left {
		right := n.right
		return right, n.detach(), true
	}
	left, removed, shrunk := deleteMin(n.left)
	n.left = left
	if shrunk {
		n.balance += 1
	}
	n, shrunk = settle(n, shrunk)
	return n, removed, shrunk
}

// remove the rightmost node of a non-empty sub-tree
func deleteMax[K any, V any](n *node[K, V]) (*node[K, V], *node[K, V], bool) {
	if nil == n {
		fault.Panicf("avlrec: deleteMax of an empty sub-tree")
	}
	if nil == n.right {
		left := n.left
		return left, n.detach(), true
	}
	right, removed, shrunk := deleteMax(n.right)
	n.right = right
	if shrunk {
		n.balance -= 1
	}
	n, shrunk = settle(n, shrunk)
	return n, removed, shrunk
}

// refresh a node on the way back up from a removal
//
// A zero factor after a shrink means the taller side lost a level, so
// the shrink propagates.  A rotation ends the shrink only when the
// new top is left unbalanced, which happens when the promoted child
// was balanced.
func settle[K any, V any](n *node[K, V], shrunk bool) (*node[K, V], bool) {
	n.fix()
	if !shrunk {
		return n, false
	}
	switch n.balance {
	case balance.Balanced:
		return n, true
	case balance.LeftHeavy, balance.RightHeavy:
		return n, false
	}
	n = rebalance(n)
	return n, balance.Balanced == n.balance
}
