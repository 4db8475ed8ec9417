// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// returns the maximum depth of the tree
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[K any, V any](w io.Writer, tree *Node[K, V], prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %+2d/[%d,%d]\n", tree.key, tree.value, up, tree.balance, tree.leftNodes, tree.rightNodes)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", tree.key, up)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
