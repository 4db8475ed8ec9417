// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlreplay - replay a Lua script of tree operations
//
// The script is a Lua file returning a table:
//
//   local M = {}
//   M.variant = "both"          -- "parent", "recursive" or "both"
//   M.order = "in-order"        -- "in-order", "reverse" or "pre-order"
//   M.keys = { 5, 3, 8, 1 }     -- initial keys, value is the key as text
//   M.operations = {
//       { op = "insert", key = 4, value = "four" },
//       { op = "delete", key = 3 },
//       { op = "delete_min" },
//       { op = "delete_max" },
//       { op = "search", key = 8 },
//       { op = "split", key = 5, mode = "left" },   -- "exclude", "left" or "right"
//       { op = "concat" },                          -- appends concat_keys
//       { op = "concat", keys = { 500, 600 } },
//   }
//   M.concat_keys = { 100, 200 }
//   M.print = true              -- draw the final trees
//   M.logging = {
//       directory = "log",
//       file = "avlreplay.log",
//       size = 1048576,
//       count = 10,
//       levels = { DEFAULT = "info" },
//   }
//   return M
//
// Every tree is verified after every step.  With variant "both" the
// parent-linked and the recursive tree must keep identical shapes;
// once a split or concat has restructured the recursive tree only
// their contents are compared.
//
// With --watch the script is replayed again whenever it is written,
// until it is removed or the program is interrupted.
package main
