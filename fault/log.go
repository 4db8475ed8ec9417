// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/bitmark-inc/logger"
)

const panicTag = "PANIC"

// hold a logger channel
var (
	lock sync.Mutex
	log  *logger.L
)

// Initialise - setup a log channel for last attempt to log something
// before an invariant failure aborts the program
//
// the logger package must already be initialised
func Initialise() error {
	lock.Lock()
	defer lock.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	lock.Lock()
	defer lock.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Panicf - log a formatted message with the caller location, then
// panic with an InvariantError carrying the same text
func Panicf(format string, arguments ...interface{}) {
	message := criticalf(2, format, arguments...)
	panic(InvariantError(message))
}

// internal: prefix with caller and send to the panic channel, or to
// stdout when no channel was setup
func criticalf(skip int, format string, arguments ...interface{}) string {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(skip); ok {
		message = fmt.Sprintf("(%q:%d) %s", file, line, message)
	}

	lock.Lock()
	defer lock.Unlock()

	if nil == log {
		fmt.Printf("*** %s\n", message)
	} else {
		log.Critical(message)
		log.Flush()
	}
	return message
}
