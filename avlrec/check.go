// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlrec

import (
	"github.com/bitmark-inc/avltree/balance"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/ordered"
)

// Verify - check every cached height, size and balance factor, the
// AVL condition and key order
func (tree *Tree[K, V]) Verify() error {
	if _, _, err := check(tree.root); nil != err {
		return err
	}

	first := true
	var previous K
	for key := range tree.All(ordered.InOrder) {
		if !first && tree.compare(previous, key) >= 0 {
			return fault.ErrKeyOrder
		}
		first = false
		previous = key
	}
	return nil
}

// returns the real height and size of a sub-tree
func check[K any, V any](n *node[K, V]) (int, int, error) {
	if nil == n {
		return 0, 0, nil
	}
	hl, sl, err := check(n.left)
	if nil != err {
		return 0, 0, err
	}
	hr, sr, err := check(n.right)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + max(hl, hr)
	s := 1 + sl + sr
	switch {
	case !balance.Valid(hr - hl):
		return 0, 0, fault.ErrUnbalanced
	case n.balance != hr-hl:
		return 0, 0, fault.ErrBalanceFactor
	case n.height != h:
		return 0, 0, fault.ErrHeightMismatch
	case n.size != s:
		return 0, 0, fault.ErrNodeCount
	}
	return h, s, nil
}
