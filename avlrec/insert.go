// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlrec

import (
	"github.com/bitmark-inc/avltree/balance"
)

// Insert - insert a new key or overwrite the value of an existing one
//
// returns true if a node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	root, _, added := tree.insert(tree.root, key, value)
	tree.root = root
	return added
}

// returns the new sub-tree root, whether its height grew and whether
// a node was added
func (tree *Tree[K, V]) insert(n *node[K, V], key K, value V) (*node[K, V], bool, bool) {
	if nil == n {
		return newNode(key, value), true, true
	}

	grown := false
	added := false
	switch c := tree.compare(key, n.key); {
	case c < 0:
		n.left, grown, added = tree.insert(n.left, key, value)
		if grown {
			n.balance -= 1
		}
	case c > 0:
		n.right, grown, added = tree.insert(n.right, key, value)
		if grown {
			n.balance += 1
		}
	default:
		n.value = value
		return n, false, false
	}

	if !added {
		return n, false, false
	}
	n.fix()

	if grown {
		switch n.balance {
		case balance.Balanced:
			// the shorter side caught up
			grown = false
		case balance.LeftHeavy, balance.RightHeavy:
			// grew, tell the parent
		default:
			n = rebalance(n)
			grown = false
		}
	}
	return n, grown, true
}
