// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avltree/ordered"
)

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	if p.right != nil {
		return p.right.first()
	}
	// climb until arriving from a left child
	for ; nil != p.up; p = p.up {
		if p.up.left == p {
			return p.up
		}
	}
	return nil
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if p.left != nil {
		return p.left.last()
	}
	for ; nil != p.up; p = p.up {
		if p.up.right == p {
			return p.up
		}
	}
	return nil
}

// internal: successor in node, left, right order
func (p *Node[K, V]) nextPreOrder() *Node[K, V] {
	if nil != p.left {
		return p.left
	}
	if nil != p.right {
		return p.right
	}
	// climb to the first ancestor entered from the left that still
	// has a right sub-tree to visit
	for ; nil != p.up; p = p.up {
		if p.up.left == p && nil != p.up.right {
			return p.up.right
		}
	}
	return nil
}

// the next move of an iterator
type action int

const (
	actionRight  action = iota // descend to lowest node of pending right sub-tree
	actionParent               // climb until arriving from a left child
	actionEnd                  // exhausted
)

// Iterator - in-order iterator that keeps no stack
//
// its whole state is the current node, the right sub-tree still to be
// visited and the next action; ancestors are recovered from the
// parent pointers
type Iterator[K any, V any] struct {
	tree    *Tree[K, V]
	current *Node[K, V]
	right   *Node[K, V]
	action  action
}

// NewIterator - create an iterator positioned before the lowest key
func (tree *Tree[K, V]) NewIterator() *Iterator[K, V] {
	it := &Iterator[K, V]{
		tree: tree,
	}
	it.Reset()
	return it
}

// Reset - restart from the lowest key of the tree
func (it *Iterator[K, V]) Reset() {
	it.current = nil
	it.right = it.tree.root
	if nil == it.right {
		it.action = actionEnd
	} else {
		it.action = actionRight
	}
}

// Next - advance to the next node, false when there are no more
func (it *Iterator[K, V]) Next() bool {
	switch it.action {
	case actionRight:
		it.current = it.right.first()
		it.setRight(it.current.right)
		return true

	case actionParent:
		for nil != it.current.up {
			previous := it.current
			it.current = it.current.up
			if it.current.left == previous {
				it.setRight(it.current.right)
				return true
			}
		}
		it.current = nil
		it.action = actionEnd
		return false

	default:
		return false
	}
}

func (it *Iterator[K, V]) setRight(right *Node[K, V]) {
	it.right = right
	if nil != right {
		it.action = actionRight
	} else {
		it.action = actionParent
	}
}

// Node - the current node, nil before the first or after the last Next
func (it *Iterator[K, V]) Node() *Node[K, V] {
	return it.current
}

// Key - key of the current node
func (it *Iterator[K, V]) Key() K {
	return it.current.key
}

// Value - value of the current node
func (it *Iterator[K, V]) Value() V {
	return it.current.value
}

// All - a sequence of all entries in the given order
//
// all three orders step through parent pointers, so no stack is kept
// and no recursion is used; an invalid order yields nothing
func (tree *Tree[K, V]) All(order ordered.Order) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		switch order {
		case ordered.InOrder:
			it := tree.NewIterator()
			for it.Next() {
				if !yield(it.Key(), it.Value()) {
					return
				}
			}
		case ordered.ReverseOrder:
			for p := tree.Last(); nil != p; p = p.Prev() {
				if !yield(p.key, p.value) {
					return
				}
			}
		case ordered.PreOrder:
			for p := tree.root; nil != p; p = p.nextPreOrder() {
				if !yield(p.key, p.value) {
					return
				}
			}
		}
	}
}
