// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

// the three legal values outside of a fix-up
const (
	LeftHeavy  = -1
	Balanced   = 0
	RightHeavy = +1
)

// Valid - true if the factor is legal outside of a fix-up
func Valid(b int) bool {
	return b >= LeftHeavy && b <= RightHeavy
}

// RotateLeft - balance factors after a left rotation
//
// x is the old subtree root and y its right child, which becomes the
// new root.  Holds for any starting factors, so the same law serves
// insertion, deletion and join.
func RotateLeft(x int, y int) (int, int) {
	x = x - 1 - max(y, 0)
	y = y - 1 + min(x, 0)
	return x, y
}

// RotateRight - balance factors after a right rotation
//
// x is the old subtree root and y its left child, which becomes the
// new root.
func RotateRight(x int, y int) (int, int) {
	x = x + 1 - min(y, 0)
	y = y + 1 + max(x, 0)
	return x, y
}

// Double - balance factors after a left-right or right-left rotation
//
// pivot is the factor of the grandchild that becomes the new root,
// taken before the rotation.  Returns the new factors of the left and
// right children of the pivot; the pivot itself always ends balanced.
func Double(pivot int) (int, int) {
	switch pivot {
	case LeftHeavy:
		return Balanced, RightHeavy
	case RightHeavy:
		return LeftHeavy, Balanced
	default:
		return Balanced, Balanced
	}
}
