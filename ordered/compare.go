// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered

import (
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/fault"
)

// Compare - a total order over keys
//
// returns negative when a < b, zero when a == b, positive when a > b
type Compare[K any] func(a K, b K) int

// Comparable - a key type that carries its own order
type Comparable[K any] interface {
	Compare(K) int
}

// Item - untyped form of Comparable, as used by older key types
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Natural - the built-in order of an ordered type
func Natural[K constraints.Ordered]() Compare[K] {
	return func(a K, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return +1
		default:
			return 0
		}
	}
}

// Resolve - return compare if it is set, otherwise the default order
// of the key type
//
// fails with fault.ErrNoComparator when the key type has no order
func Resolve[K any](compare Compare[K]) (Compare[K], error) {
	if nil != compare {
		return compare, nil
	}

	var zero K
	t := reflect.TypeOf(&zero).Elem()

	// method sets are checked on the type, since the zero value of an
	// interface key is nil
	switch {
	case t.Implements(reflect.TypeOf((*Comparable[K])(nil)).Elem()):
		return func(a K, b K) int {
			return any(a).(Comparable[K]).Compare(b)
		}, nil
	case t.Implements(reflect.TypeOf((*Item)(nil)).Elem()):
		return func(a K, b K) int {
			return any(a).(Item).Compare(b)
		}, nil
	}

	switch any(zero).(type) {
	case int:
		return natural[int, K](), nil
	case int64:
		return natural[int64, K](), nil
	case uint64:
		return natural[uint64, K](), nil
	case float64:
		return natural[float64, K](), nil
	case string:
		return natural[string, K](), nil
	}

	// named types and the remaining widths go through reflection
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a K, b K) int {
			return three(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a K, b K) int {
			return three(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(a K, b K) int {
			return three(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, nil
	case reflect.String:
		return func(a K, b K) int {
			return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, nil
	}
	return nil, fault.ErrNoComparator
}

func natural[T constraints.Ordered, K any]() Compare[K] {
	return any(Natural[T]()).(Compare[K])
}

func three[T constraints.Ordered](a T, b T) int {
	return Natural[T]()(a, b)
}
