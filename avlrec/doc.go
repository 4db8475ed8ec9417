// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avlrec - an AVL balanced tree without parent pointers
//
// Every update is a recursive descent; each level returns its
// possibly rotated sub-tree together with flags telling the caller
// whether the height changed.  A caller only adjusts its own balance
// factor when told the child grew or shrank.
//
// Nodes cache their height and the size of their sub-tree.  This
// gives constant time Count and Height, index access, and allows two
// trees to be joined in logarithmic time (Concat) and one tree to be
// cut in two around a key (Split).
//
// Note: an individual tree is not thread safe.  A sequence from All
//       must not be consumed across an update of its tree.
package avlrec
