// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

func runScript(t *testing.T, text string) (string, *counter.Set, error) {
	script, err := getScript(writeScript(t, text))
	require.Nil(t, err, "script error")

	stats := counter.NewSet(statNames...)
	var out bytes.Buffer
	err = replay(script, &out, logger.New("test"), stats)
	return out.String(), stats, err
}

func TestReplayBoth(t *testing.T) {
	setupLogger(t)
	defer teardown()

	out, stats, err := runScript(t, `
return {
    keys = { 1, 2, 3, 4, 5, 6, 7 },
    operations = {
        { op = "delete", key = 1 },
        { op = "delete", key = 1 },
        { op = "insert", key = 3, value = "three" },
        { op = "search", key = 3 },
        { op = "search", key = 99 },
        { op = "delete_min" },
        { op = "delete_max" },
    },
}
`)
	require.Nil(t, err, "wrong error")

	expected := []string{
		"delete 1: \"1\"",
		"delete 1: not found",
		"insert 3 → \"three\": replaced",
		"search 3: \"three\"",
		"search 99: not found",
		"delete_min: 2 \"2\"",
		"delete_max: 7 \"7\"",
		"parent: count: 4  height: 3  in-order: [3 4 5 6]",
		"recursive: count: 4  height: 3  in-order: [3 4 5 6]",
	}
	assert.Equal(t, strings.Join(expected, "\n")+"\n", out, "wrong output")

	assert.Equal(t, uint64(1), stats.Get(statRuns).Uint64(), "runs")
	assert.Equal(t, uint64(7), stats.Get(statSteps).Uint64(), "steps")
	assert.Equal(t, uint64(7), stats.Get(statAdded).Uint64(), "added")
	assert.Equal(t, uint64(1), stats.Get(statReplaced).Uint64(), "replaced")
	assert.Equal(t, uint64(4), stats.Get(statMissed).Uint64(), "missed in both trees")
	assert.Equal(t, uint64(6), stats.Get(statRemoved).Uint64(), "removed from both trees")
	assert.Equal(t, uint64(8), stats.Get(statChecks).Uint64(), "checks")
}

func TestReplaySplitAndConcat(t *testing.T) {
	setupLogger(t)
	defer teardown()

	out, stats, err := runScript(t, `
return {
    variant = "both",
    order = "reverse",
    keys = { 1, 2, 3, 4, 5 },
    operations = {
        { op = "split", key = 3, mode = "exclude" },
        { op = "split", key = 4, mode = "left" },
        { op = "concat" },
    },
    concat_keys = { 10, 20, 30 },
}
`)
	require.Nil(t, err, "wrong error")

	expected := []string{
		"split 3 exclude: found: true  left: [1 2]  right: [4 5]",
		"split 4 left: found: true  left: [1 2 4]  right: [5]",
		"concat: 3 keys  count: 7",
		"parent: count: 7  height: 3  reverse: [30 20 10 5 4 2 1]",
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5, "wrong output: %s", out)
	assert.Equal(t, expected, lines[:4], "wrong output")
	assert.True(t, strings.HasPrefix(lines[4], "recursive: count: 7  height: "), "recursive summary: %s", lines[4])
	assert.True(t, strings.HasSuffix(lines[4], "reverse: [30 20 10 5 4 2 1]"), "recursive keys: %s", lines[4])

	assert.Equal(t, uint64(2), stats.Get(statSplits).Uint64(), "splits")
	assert.Equal(t, uint64(3), stats.Get(statJoins).Uint64(), "joins")
	assert.Equal(t, uint64(8), stats.Get(statAdded).Uint64(), "initial and concatenated keys")
}

func TestRerunResetsStatistics(t *testing.T) {
	setupLogger(t)
	defer teardown()

	fileName := writeScript(t, `
return {
    keys = { 4, 2, 6 },
    operations = {
        { op = "search", key = 4 },
        { op = "delete", key = 9 },
    },
}
`)
	script, err := getScript(fileName)
	require.Nil(t, err, "script error")

	stats := counter.NewSet(statNames...)
	log := logger.New("test")

	var out bytes.Buffer
	require.Nil(t, replay(script, &out, log, stats), "first replay")
	require.Nil(t, replay(script, &out, log, stats), "second replay")
	assert.Equal(t, uint64(2), stats.Get(statRuns).Uint64(), "runs accumulate")

	out.Reset()
	err = rerun(fileName, &out, log, stats)
	require.Nil(t, err, "wrong error")

	assert.Equal(t, uint64(1), stats.Get(statRuns).Uint64(), "runs")
	assert.Equal(t, uint64(2), stats.Get(statSteps).Uint64(), "steps")
	assert.Equal(t, uint64(3), stats.Get(statAdded).Uint64(), "added")
	assert.Equal(t, uint64(2), stats.Get(statMissed).Uint64(), "missed in both trees")
	assert.True(t, stats.Get(statSplits).IsZero(), "splits")
	assert.Contains(t, out.String(), "parent: count: 3  height: 2  in-order: [2 4 6]", "summary")
}

func TestRerunKeepsStatisticsOnScriptError(t *testing.T) {
	setupLogger(t)
	defer teardown()

	fileName := writeScript(t, "return { variant = \"binary\" }\n")

	stats := counter.NewSet(statNames...)
	stats.Get(statRuns).Increment()

	var out bytes.Buffer
	err := rerun(fileName, &out, logger.New("test"), stats)
	assert.Equal(t, fault.ErrUnknownVariant, err, "wrong error")
	assert.Equal(t, uint64(1), stats.Get(statRuns).Uint64(), "statistics were reset")
	assert.Empty(t, out.String(), "output written")
}

func TestReplayPrint(t *testing.T) {
	setupLogger(t)
	defer teardown()

	out, _, err := runScript(t, `
return {
    variant = "parent",
    order = "pre-order",
    keys = { 10, 20, 30 },
    print = true,
}
`)
	require.Nil(t, err, "wrong error")
	assert.Contains(t, out, "parent: count: 3  height: 2  pre-order: [20 10 30]", "summary")
	assert.Contains(t, out, "|------+ 20 → 20 ^<nil>", "drawing")
}

func TestReplayErrors(t *testing.T) {
	setupLogger(t)
	defer teardown()

	tests := []struct {
		text string
		err  error
	}{
		{"return { variant = \"parent\", operations = { { op = \"split\", key = 1 } } }\n", fault.ErrUnsupportedOperation},
		{"return { variant = \"parent\", operations = { { op = \"concat\" } } }\n", fault.ErrUnsupportedOperation},
		{"return { keys = { 5, 50 }, operations = { { op = \"concat\", keys = { 20 } } } }\n", fault.ErrConcatOrder},
	}
	for i, test := range tests {
		_, _, err := runScript(t, test.text)
		assert.Equal(t, test.err, err, "%d: wrong error", i)
	}
}

func TestReplayRecursiveOnly(t *testing.T) {
	setupLogger(t)
	defer teardown()

	out, _, err := runScript(t, `
return {
    variant = "recursive",
    keys = { 3, 1, 2 },
    operations = { { op = "concat", keys = { 7, 8 } } },
}
`)
	require.Nil(t, err, "wrong error")
	assert.Contains(t, out, "recursive: count: 5  height: 3  in-order: [1 2 3 7 8]", "summary")
	assert.NotContains(t, out, "parent:", "parent tree used")
}
