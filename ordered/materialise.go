// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered

import (
	"github.com/bitmark-inc/avltree/fault"
)

// ToSlice - collect all entries in the given order
func ToSlice[K any, V any](t Traverser[K, V], order Order) ([]Entry[K, V], error) {
	if !order.Valid() {
		return nil, fault.ErrInvalidOrder
	}
	entries := make([]Entry[K, V], 0, t.Count())
	for key, value := range t.All(order) {
		entries = append(entries, Entry[K, V]{Key: key, Value: value})
	}
	return entries, nil
}

// Keys - collect just the keys in the given order
func Keys[K any, V any](t Traverser[K, V], order Order) ([]K, error) {
	if !order.Valid() {
		return nil, fault.ErrInvalidOrder
	}
	keys := make([]K, 0, t.Count())
	for key := range t.All(order) {
		keys = append(keys, key)
	}
	return keys, nil
}
