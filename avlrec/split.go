// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlrec

import (
	"github.com/bitmark-inc/avltree/ordered"
)

// Split - cut the tree into the keys below and above key
//
// mode decides where the node for key goes if it exists: nowhere
// (ExcludeKey), the left tree (KeyToLeft) or the right tree
// (KeyToRight); any other mode is treated as ExcludeKey.  found
// reports whether key was present.  The receiver is left empty.
func (tree *Tree[K, V]) Split(key K, mode ordered.SplitMode) (*Tree[K, V], *Tree[K, V], bool) {
	l, r, found := tree.split(tree.root, key, mode)
	tree.root = nil
	return tree.with(l), tree.with(r), found
}

// descend to key; the sub-trees hanging off the path are joined back
// onto the side they belong to, using the path nodes as the middles
func (tree *Tree[K, V]) split(n *node[K, V], key K, mode ordered.SplitMode) (*node[K, V], *node[K, V], bool) {
	if nil == n {
		return nil, nil, false
	}

	left := n.left
	right := n.right
	switch c := tree.compare(key, n.key); {
	case c < 0:
		l, r, found := tree.split(left, key, mode)
		return l, join(r, n.detach(), right), found
	case c > 0:
		l, r, found := tree.split(right, key, mode)
		return join(left, n.detach(), l), r, found
	}

	switch mode {
	case ordered.KeyToLeft:
		return join(left, n.detach(), nil), right, true
	case ordered.KeyToRight:
		return left, join(nil, n.detach(), right), true
	default:
		n.detach()
		return left, right, true
	}
}
