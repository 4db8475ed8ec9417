// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

const (
	watcherLoggerPrefix = "watcher"
)

// scriptWatcher - background process turning file system events on
// the script into change and remove signals
type scriptWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newScriptWatcher(scriptFile string, log *logger.L) (*scriptWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(scriptFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", scriptFile, err)
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrNotFoundScript
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	if err := watcher.Add(filePath); nil != err {
		log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return nil, err
	}

	return &scriptWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Run - background process loop
func (w *scriptWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	w.log.Infof("watching: %s", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed, stop", w.filePath)
				w.sendEvent(w.remove, "remove")
				break loop
			}

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Debugf("event for: %s not for: %s, discard", event.Name, w.filePath)
				continue loop
			}

			if watcherEventFileChange(event) {
				w.log.Info("sending script change event…")
				w.sendEvent(w.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}

	w.log.Info("stopped")
}

func (w *scriptWatcher) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

// never blocks: a pending event already covers this one
func (w *scriptWatcher) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return "" == event.Name ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
