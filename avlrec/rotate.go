// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlrec

import (
	"github.com/bitmark-inc/avltree/balance"
)

// single RR rotation: x.right is promoted and returned
func rotateLeft[K any, V any](x *node[K, V]) *node[K, V] {
	y := x.right
	x.right = y.left
	y.left = x

	x.balance, y.balance = balance.RotateLeft(x.balance, y.balance)
	x.fix()
	y.fix()
	return y
}

// single LL rotation: x.left is promoted and returned
func rotateRight[K any, V any](x *node[K, V]) *node[K, V] {
	y := x.left
	x.left = y.right
	y.right = x

	x.balance, y.balance = balance.RotateRight(x.balance, y.balance)
	x.fix()
	y.fix()
	return y
}

// double LR rotation: x is left heavy and x.left is right heavy
func rotateLeftRight[K any, V any](x *node[K, V]) *node[K, V] {
	pivot := x.left.right.balance
	x.left = rotateLeft(x.left)
	z := rotateRight(x)

	z.left.balance, z.right.balance = balance.Double(pivot)
	z.balance = balance.Balanced
	return z
}

// double RL rotation: mirror of rotateLeftRight
func rotateRightLeft[K any, V any](x *node[K, V]) *node[K, V] {
	pivot := x.right.left.balance
	x.right = rotateRight(x.right)
	z := rotateLeft(x)

	z.left.balance, z.right.balance = balance.Double(pivot)
	z.balance = balance.Balanced
	return z
}

// restore a node whose factor reached ±2, returning the new sub-tree
// root; a node within ±1 is returned unchanged
//
// a child with a zero factor takes a single rotation, which only
// happens after a delete or a join
func rebalance[K any, V any](n *node[K, V]) *node[K, V] {
	switch n.balance {
	case +2:
		if n.right.balance < balance.Balanced {
			return rotateRightLeft(n)
		}
		return rotateLeft(n)
	case -2:
		if n.left.balance > balance.Balanced {
			return rotateLeftRight(n)
		}
		return rotateRight(n)
	}
	return n
}
