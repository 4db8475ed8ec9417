// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  An iterator or a sequence from All is invalidated
//       by any insert or delete on its tree; continuing to use it
//       afterwards is undefined.
//
// Insert and delete walk down to the target and then back up
// through the parent pointers, rotating where a balance factor
// reaches ±2.  An insert stops at the first ancestor whose factor
// becomes zero or after one rotation.  A delete continues past a
// zero factor and past a rotation that leaves its top node balanced,
// since in both cases the subtree has become shorter.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Also delete does not
// copy data around so that a node fetched earlier still refers to
// the same entry after other nodes are deleted.
//
// Each node also counts the nodes in its sub-trees so that entries
// can be fetched by index.
package avl
