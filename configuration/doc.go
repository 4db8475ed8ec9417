// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// The file is executed as a Lua chunk and must return a table, which
// is mapped onto a Go struct using "gluamapper" field tags.  Most of
// base Lua is available, such as reading files to set key data and
// os.getenv to extract environment supplied items.  The global table
// arg holds the file name at arg[0], followed by any extra arguments
// given to the parser.
package configuration
