// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlrec

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root branch = iota
	left
	right
)

// Print - display an ASCII graphic representation of the tree
//
// returns the maximum depth of the tree
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

func printTree[K any, V any](w io.Writer, n *node[K, V], prefix string, br branch, printData bool) int {
	if nil == n {
		return 0
	}
	rd := 0
	if nil != n.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, n.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%v → %v %+2d h:%d n:%d\n", n.key, n.value, n.balance, n.height, n.size)
	} else {
		fmt.Fprintf(w, "%v\n", n.key)
	}
	ld := 0
	if nil != n.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, n.left, prefix+t, left, printData)
	}
	return 1 + max(ld, rd)
}
