// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - closed-form balance factor laws for AVL rotations
//
// A balance factor is height(right) - height(left).  Both tree
// variants restructure nodes themselves and then call these laws so
// that a rotation costs O(1) and never needs subtree heights.
//
//	   x                 y
//	  / \               / \
//	 A   y     ←→      x   C
//	    / \           / \
//	   B   C         A   B
//
// Left rotation reads right to left in the picture above, right
// rotation left to right.
package balance
