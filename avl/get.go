// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - index to specific item
func (tree *Tree[K, V]) Get(index int) *Node[K, V] {
	if index < 0 || index >= tree.Count() {
		return nil
	}

	p := tree.root
	for nil != p {
		nl := p.leftNodes
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		default:
			return p
		}
	}
	return nil
}
