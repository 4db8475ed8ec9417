// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/balance"
	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp[K any, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckCounts - check the sub-tree node counts and the tree count
func (tree *Tree[K, V]) CheckCounts() bool {
	n, ok := checkCounts(tree.root)
	return ok && n == tree.count
}

func checkCounts[K any, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, okl := checkCounts(p.left)
	nr, okr := checkCounts(p.right)
	if !okl || !okr || nl != p.leftNodes || nr != p.rightNodes {
		return 0, false
	}
	return 1 + nl + nr, true
}

// CheckBalance - check that every factor is legal and equal to the
// difference of the sub-tree heights
func (tree *Tree[K, V]) CheckBalance() bool {
	_, err := checkHeights(tree.root)
	return nil == err
}

func checkHeights[K any, V any](p *Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	hl, err := checkHeights(p.left)
	if nil != err {
		return 0, err
	}
	hr, err := checkHeights(p.right)
	if nil != err {
		return 0, err
	}
	if !balance.Valid(hr - hl) {
		return 0, fault.ErrUnbalanced
	}
	if p.balance != hr-hl {
		return 0, fault.ErrBalanceFactor
	}
	return 1 + max(hl, hr), nil
}

// Verify - run all consistency checks, including key order
func (tree *Tree[K, V]) Verify() error {
	if !tree.CheckUp() {
		return fault.ErrParentLink
	}
	if _, err := checkHeights(tree.root); nil != err {
		return err
	}
	if !tree.CheckCounts() {
		return fault.ErrNodeCount
	}
	for p := tree.First(); nil != p; p = p.Next() {
		if n := p.Next(); nil != n && tree.compare(p.key, n.key) >= 0 {
			return fault.ErrKeyOrder
		}
	}
	return nil
}
