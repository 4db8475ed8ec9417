// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ordered - contracts shared by the ordered containers
//
// Holds the key comparison contract, the traversal orders, the split
// modes and the interfaces that the AVL variants satisfy, so that
// code consuming a tree never sees a node type.
package ordered
