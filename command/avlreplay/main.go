// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "script", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--version] [--verbose] [--watch] --script=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if 1 != len(options["script"]) {
		exitwithstatus.Message("%s: %s, %d were given", program, fault.ErrMissingScript, len(options["script"]))
	}
	scriptFile := options["script"][0]
	verbose := len(options["verbose"]) > 0
	watch := len(options["watch"]) > 0

	script, err := getScript(scriptFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read script: %q  error: %s", program, scriptFile, err)
	}

	// start logging
	if verbose {
		script.Logging.Console = true
	}
	if err = logger.Initialise(script.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("script: %s  variant: %s  order: %s", scriptFile, script.Variant, script.order)

	stats := counter.NewSet(statNames...)
	replayLog := logger.New("replay")

	err = replay(script, os.Stdout, replayLog, stats)
	if nil != err && !watch {
		exitwithstatus.Message("%s: replay of: %q failed with error: %s", program, scriptFile, err)
	}
	if !watch {
		return
	}
	if nil != err {
		fmt.Printf("replay error: %s\n", err)
	}

	watcher, err := newScriptWatcher(scriptFile, logger.New(watcherLoggerPrefix))
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}

	processes := background.Processes{
		watcher,
	}
	p := background.Start(processes, nil)
	defer p.Stop()

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	if verbose {
		fmt.Printf("\nwatching: %s  waiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n", scriptFile)
	}

	// closed if the watcher stops by itself
	done := p.Done()

	for {
		select {
		case <-watcher.change:
			fmt.Printf("\n--- replay ---\n")
			if err := rerun(scriptFile, os.Stdout, replayLog, stats); nil != err {
				fmt.Printf("replay error: %s\n", err)
			}

		case <-watcher.remove:
			log.Warnf("script: %q removed", scriptFile)
			return

		case <-done:
			log.Warn("watcher stopped")
			return

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if verbose {
				fmt.Printf("\nreceived signal: %v\n", sig)
			}
			return
		}
	}
}
