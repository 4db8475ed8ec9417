// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlrec

// node - a node in the tree, owned by its parent
type node[K any, V any] struct {
	left    *node[K, V]
	right   *node[K, V]
	key     K
	value   V
	balance int // -1, 0, +1
	height  int // leaf = 1
	size    int // nodes in this sub-tree
}

func newNode[K any, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:    key,
		value:  value,
		height: 1,
		size:   1,
	}
}

func height[K any, V any](n *node[K, V]) int {
	if nil == n {
		return 0
	}
	return n.height
}

func size[K any, V any](n *node[K, V]) int {
	if nil == n {
		return 0
	}
	return n.size
}

// recompute the cached height and size after a child changed
//
// the balance factor is not touched: it is maintained by the flags
// and the rotation laws
func (n *node[K, V]) fix() {
	n.height = 1 + max(height(n.left), height(n.right))
	n.size = 1 + size(n.left) + size(n.right)
}

// as fix, but also derive the balance factor from the heights; only
// used where two unrelated trees are joined
func (n *node[K, V]) rebuild() {
	n.fix()
	n.balance = height(n.right) - height(n.left)
}

// detach a node so it can be reused as the middle of a join
func (n *node[K, V]) detach() *node[K, V] {
	n.left = nil
	n.right = nil
	n.balance = 0
	n.height = 1
	n.size = 1
	return n
}
