// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceFactor        = InvariantError("balance factor does not match subtree heights")
	ErrConcatOrder          = InvalidError("concatenated keys must be greater than every key of the tree")
	ErrContentMismatch      = ProcessError("trees have different contents")
	ErrHeightMismatch       = InvariantError("cached height does not match subtree")
	ErrInvalidLogFile       = InvalidError("log file must be a plain file name")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOrder         = InvalidError("invalid traversal order")
	ErrInvalidSplitMode     = InvalidError("invalid split mode")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyOrder             = InvariantError("keys are not in strictly increasing order")
	ErrMissingScript        = InvalidError("script file is required")
	ErrNoComparator         = InvalidError("key type has no natural order and no comparator was supplied")
	ErrNodeCount            = InvariantError("node count does not match tree")
	ErrNotFoundScript       = NotFoundError("script file is not found")
	ErrParentLink           = InvariantError("parent link does not match structure")
	ErrScriptNotTable       = InvalidError("script did not return a table")
	ErrShapeMismatch        = ProcessError("trees have different shapes")
	ErrUnbalanced           = InvariantError("subtree heights differ by more than one")
	ErrUnknownOperation     = InvalidError("unknown operation")
	ErrUnknownVariant       = InvalidError("unknown tree variant")
	ErrUnsupportedOperation = InvalidError("operation needs the recursive tree")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrInvariant(e error) bool { _, ok := e.(InvariantError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
