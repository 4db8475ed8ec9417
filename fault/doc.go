// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Recoverable conditions are returned as one of these values.  A
// broken tree invariant is a bug, not a runtime condition, and is
// reported through Panicf after logging on the "PANIC" channel.
package fault
