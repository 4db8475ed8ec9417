// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlrec

// join two sub-trees through a detached middle node
//
// every key of l must be below mid.key and every key of r above it.
// The shorter tree is hung from the spine of the taller one at the
// first node no more than one level above it, then the spine is
// rebalanced on the way back up.
func join[K any, V any](l *node[K, V], mid *node[K, V], r *node[K, V]) *node[K, V] {
	hl := height(l)
	hr := height(r)
	switch {
	case hl > hr+1:
		return joinRight(l, mid, r)
	case hr > hl+1:
		return joinLeft(l, mid, r)
	}
	mid.left = l
	mid.right = r
	mid.rebuild()
	return mid
}

// l is the taller: follow its right spine
func joinRight[K any, V any](l *node[K, V], mid *node[K, V], r *node[K, V]) *node[K, V] {
	if height(l) <= height(r)+1 {
		mid.left = l
		mid.right = r
		mid.rebuild()
		return mid
	}
	l.right = joinRight(l.right, mid, r)
	l.rebuild()
	return rebalance(l)
}

// r is the taller: follow its left spine
func joinLeft[K any, V any](l *node[K, V], mid *node[K, V], r *node[K, V]) *node[K, V] {
	if height(r) <= height(l)+1 {
		mid.left = l
		mid.right = r
		mid.rebuild()
		return mid
	}
	r.left = joinLeft(l, mid, r.left)
	r.rebuild()
	return rebalance(r)
}

// join two sub-trees without a middle node, by taking the extreme
// node of the shorter one
func concat[K any, V any](a *node[K, V], b *node[K, V]) *node[K, V] {
	switch {
	case nil == a:
		return b
	case nil == b:
		return a
	case height(a) < height(b):
		rest, mid, _ := deleteMax(a)
		return join(rest, mid, b)
	default:
		rest, mid, _ := deleteMin(b)
		return join(a, mid, rest)
	}
}

// Concat - append all the nodes of other to this tree
//
// every key of other must be greater than every key of this tree;
// this is not checked and violating it leaves a tree that is no
// longer ordered.  other is left empty and the receiver is returned.
func (tree *Tree[K, V]) Concat(other *Tree[K, V]) *Tree[K, V] {
	if nil == other || other == tree {
		return tree
	}
	tree.root = concat(tree.root, other.root)
	other.root = nil
	return tree
}

// Concatenate - join two trees into the first
//
// see Concat for the ordering requirement
func Concatenate[K any, V any](a *Tree[K, V], b *Tree[K, V]) *Tree[K, V] {
	return a.Concat(b)
}
