// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/ordered"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories are relative to the script file)
const (
	defaultVariant = "both"
	defaultOrder   = "in-order"
	defaultMode    = "exclude"

	defaultLogDirectory = "log"
	defaultLogFile      = "avlreplay.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// which trees a script runs against
type variant int

const (
	parentLinked variant = iota + 1
	recursive
	bothVariants
)

var variantNames = map[string]variant{
	"parent":    parentLinked,
	"recursive": recursive,
	"both":      bothVariants,
}

// operation names
const (
	opInsert    = "insert"
	opDelete    = "delete"
	opDeleteMin = "delete_min"
	opDeleteMax = "delete_max"
	opSearch    = "search"
	opSplit     = "split"
	opConcat    = "concat"
)

var operationNames = map[string]struct{}{
	opInsert:    {},
	opDelete:    {},
	opDeleteMin: {},
	opDeleteMax: {},
	opSearch:    {},
	opSplit:     {},
	opConcat:    {},
}

// Operation - one step of a script
type Operation struct {
	Op    string `gluamapper:"op" json:"op"`
	Key   int    `gluamapper:"key" json:"key"`
	Value string `gluamapper:"value" json:"value"`
	Mode  string `gluamapper:"mode" json:"mode"`
	Keys  []int  `gluamapper:"keys" json:"keys"`

	mode ordered.SplitMode
}

// Script - the table returned by a replay script
type Script struct {
	Variant    string               `gluamapper:"variant" json:"variant"`
	Order      string               `gluamapper:"order" json:"order"`
	Keys       []int                `gluamapper:"keys" json:"keys"`
	Operations []Operation          `gluamapper:"operations" json:"operations"`
	ConcatKeys []int                `gluamapper:"concat_keys" json:"concat_keys"`
	Print      bool                 `gluamapper:"print" json:"print"`
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`

	variant variant
	order   ordered.Order
}

// will read decode and verify the script
func getScript(scriptFileName string) (*Script, error) {

	scriptFileName, err := filepath.Abs(filepath.Clean(scriptFileName))
	if nil != err {
		return nil, err
	}
	if !util.EnsureFileExists(scriptFileName) {
		return nil, fault.ErrNotFoundScript
	}

	// absolute path to the script directory
	scriptDirectory, _ := filepath.Split(scriptFileName)

	options := &Script{
		Variant: defaultVariant,
		Order:   defaultOrder,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    make(LoglevelMap, len(defaultLogLevels)),
		},
	}

	for tag, level := range defaultLogLevels {
		options.Logging.Levels[tag] = level
	}

	if err := configuration.ParseConfigurationFile(scriptFileName, options); err != nil {
		return nil, err
	}

	v, ok := variantNames[strings.ToLower(strings.TrimSpace(options.Variant))]
	if !ok {
		return nil, fault.ErrUnknownVariant
	}
	options.variant = v

	options.order, err = ordered.ParseOrder(options.Order)
	if nil != err {
		return nil, err
	}

	for i := range options.Operations {
		op := &options.Operations[i]
		op.Op = strings.ToLower(strings.TrimSpace(op.Op))
		if _, ok := operationNames[op.Op]; !ok {
			return nil, fault.ErrUnknownOperation
		}
		if opSplit != op.Op {
			continue
		}
		if "" == op.Mode {
			op.Mode = defaultMode
		}
		op.mode, err = ordered.ParseSplitMode(op.Mode)
		if nil != err {
			return nil, err
		}
	}

	// log file must be a plain name inside the log directory
	if !util.IsPlainName(options.Logging.File) {
		return nil, fault.ErrInvalidLogFile
	}
	options.Logging.Directory, err = util.EnsureDirectory(scriptDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	// done
	return options, nil
}
