// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/balance"
)

// single RR rotation: x.right is promoted
//
// returns the new sub-tree root, which is already linked into the
// parent of x (or is the tree root)
func (tree *Tree[K, V]) rotateLeft(x *Node[K, V]) *Node[K, V] {
	parent := x.up
	y := x.right

	x.setRight(y.left)
	x.rightNodes = y.leftNodes

	y.setLeft(x)
	y.leftNodes = x.size()

	tree.replace(parent, x, y)

	x.balance, y.balance = balance.RotateLeft(x.balance, y.balance)
	return y
}

// single LL rotation: x.left is promoted
func (tree *Tree[K, V]) rotateRight(x *Node[K, V]) *Node[K, V] {
	parent := x.up
	y := x.left

	x.setLeft(y.right)
	x.leftNodes = y.rightNodes

	y.setRight(x)
	y.rightNodes = x.size()

	tree.replace(parent, x, y)

	x.balance, y.balance = balance.RotateRight(x.balance, y.balance)
	return y
}

// double LR rotation: x is left heavy and x.left is right heavy, so
// the grandchild x.left.right is promoted two levels
func (tree *Tree[K, V]) rotateLeftRight(x *Node[K, V]) *Node[K, V] {
	parent := x.up
	y := x.left
	z := y.right
	pivot := z.balance

	y.setRight(z.left)
	y.rightNodes = z.leftNodes
	x.setLeft(z.right)
	x.leftNodes = z.rightNodes

	z.setLeft(y)
	z.setRight(x)
	z.leftNodes = y.size()
	z.rightNodes = x.size()

	tree.replace(parent, x, z)

	y.balance, x.balance = balance.Double(pivot)
	z.balance = balance.Balanced
	return z
}

// double RL rotation: mirror of rotateLeftRight
func (tree *Tree[K, V]) rotateRightLeft(x *Node[K, V]) *Node[K, V] {
	parent := x.up
	y := x.right
	z := y.left
	pivot := z.balance

	y.setLeft(z.right)
	y.leftNodes = z.rightNodes
	x.setRight(z.left)
	x.rightNodes = z.leftNodes

	z.setLeft(x)
	z.setRight(y)
	z.leftNodes = x.size()
	z.rightNodes = y.size()

	tree.replace(parent, x, z)

	x.balance, y.balance = balance.Double(pivot)
	z.balance = balance.Balanced
	return z
}
