// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered

import (
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Order - the sequence in which a traversal produces entries
type Order int

// traversal orders
const (
	InOrder      Order = iota + 1 // left, node, right
	ReverseOrder                  // right, node, left
	PreOrder                      // node, left, right
)

var orderNames = map[Order]string{
	InOrder:      "in-order",
	ReverseOrder: "reverse",
	PreOrder:     "pre-order",
}

// Valid - true for one of the three fixed orders
func (o Order) Valid() bool {
	_, ok := orderNames[o]
	return ok
}

func (o Order) String() string {
	if s, ok := orderNames[o]; ok {
		return s
	}
	return "invalid"
}

// ParseOrder - convert a name as produced by String back to an Order
func ParseOrder(s string) (Order, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for o, name := range orderNames {
		if name == s {
			return o, nil
		}
	}
	return 0, fault.ErrInvalidOrder
}

// SplitMode - where the split key goes when a tree is split
type SplitMode int

// split modes
const (
	ExcludeKey SplitMode = iota + 1 // key in neither result
	KeyToLeft                       // key is the maximum of the left result
	KeyToRight                      // key is the minimum of the right result
)

var splitModeNames = map[SplitMode]string{
	ExcludeKey: "exclude",
	KeyToLeft:  "left",
	KeyToRight: "right",
}

// Valid - true for one of the three split modes
func (m SplitMode) Valid() bool {
	_, ok := splitModeNames[m]
	return ok
}

func (m SplitMode) String() string {
	if s, ok := splitModeNames[m]; ok {
		return s
	}
	return "invalid"
}

// ParseSplitMode - convert a name as produced by String back to a SplitMode
func ParseSplitMode(s string) (SplitMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range splitModeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fault.ErrInvalidSplitMode
}
