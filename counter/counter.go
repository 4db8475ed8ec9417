// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a statistics counter that can be updated from several
// go routines, just a 64 bit unsigned integer
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(ic), n)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Swap - set to zero, returning the previous value
func (ic *Counter) Swap() uint64 {
	return atomic.SwapUint64((*uint64)(ic), 0)
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == atomic.LoadUint64((*uint64)(ic))
}

// Set - a named group of counters
type Set struct {
	counters map[string]*Counter
}

// NewSet - create a group with a counter for each name
func NewSet(names ...string) *Set {
	s := &Set{
		counters: make(map[string]*Counter, len(names)),
	}
	for _, name := range names {
		s.counters[name] = new(Counter)
	}
	return s
}

// Get - the counter for a name, nil for an unknown name
func (s *Set) Get(name string) *Counter {
	return s.counters[name]
}

// Reset - set every counter to zero
func (s *Set) Reset() {
	for _, c := range s.counters {
		c.Swap()
	}
}
