// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlrec

import (
	"iter"

	"github.com/bitmark-inc/avltree/ordered"
)

// All - a sequence of all entries in the given order
//
// without parent pointers the path back to the root is kept on an
// explicit stack, bounded by the tree height; an invalid order yields
// nothing
func (tree *Tree[K, V]) All(order ordered.Order) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]*node[K, V], 0, height(tree.root))

		switch order {
		case ordered.InOrder, ordered.ReverseOrder:
			reverse := ordered.ReverseOrder == order
			n := tree.root
			for nil != n || 0 != len(stack) {
				for nil != n {
					stack = append(stack, n)
					if reverse {
						n = n.right
					} else {
						n = n.left
					}
				}
				n = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if !yield(n.key, n.value) {
					return
				}
				if reverse {
					n = n.left
				} else {
					n = n.right
				}
			}

		case ordered.PreOrder:
			if nil == tree.root {
				return
			}
			stack = append(stack, tree.root)
			for 0 != len(stack) {
				n := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if !yield(n.key, n.value) {
					return
				}
				if nil != n.right {
					stack = append(stack, n.right)
				}
				if nil != n.left {
					stack = append(stack, n.left)
				}
			}
		}
	}
}

// Visitor - called for each entry with its depth below the root
//
// return false to stop the walk
type Visitor[K any, V any] func(key K, value V, level int) bool

// Visit - call the visitor for every entry in ascending key order
//
// returns false if the visitor stopped the walk
func (tree *Tree[K, V]) Visit(visitor Visitor[K, V]) bool {
	return visit(tree.root, 0, visitor)
}

func visit[K any, V any](n *node[K, V], level int, visitor Visitor[K, V]) bool {
	if nil == n {
		return true
	}
	return visit(n.left, level+1, visitor) &&
		visitor(n.key, n.value, level) &&
		visit(n.right, level+1, visitor)
}
