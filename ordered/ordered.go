// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered

import (
	"iter"
)

// Entry - a key and its value as produced by a traversal
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Traverser - the part of a container needed to materialise it
type Traverser[K any, V any] interface {
	Count() int
	All(order Order) iter.Seq2[K, V]
}

// Map - a balanced ordered map
//
// Not safe for concurrent use.  A sequence returned by All must not be
// consumed across a call that changes the map; doing so is undefined.
type Map[K any, V any] interface {
	Traverser[K, V]

	// Insert adds the key or overwrites its value, true if a node was added
	Insert(key K, value V) bool

	// Delete removes the key, returning its value and true if it was present
	Delete(key K) (V, bool)

	// Search returns the value stored at key, false if absent
	Search(key K) (V, bool)
	Exists(key K) bool

	// extremes, all false on an empty map
	Min() (K, V, bool)
	Max() (K, V, bool)
	DeleteMin() (K, V, bool)
	DeleteMax() (K, V, bool)

	IsEmpty() bool
	Height() int
	Clear()
}

// SplittableMap - a Map that can be split and joined in logarithmic
// time
//
// T is the concrete tree type.  Both operations consume their inputs:
// ownership of every node moves to the returned trees.
type SplittableMap[K any, V any, T any] interface {
	Map[K, V]

	// Split partitions around key, false if key was not present
	Split(key K, mode SplitMode) (left T, right T, found bool)

	// Concat joins other onto the end; every key of other must be
	// greater than every key of the receiver, which is not checked
	Concat(other T) T
}
