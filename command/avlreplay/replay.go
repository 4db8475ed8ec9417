// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/avlrec"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/ordered"
)

// statistics names, in reporting order
const (
	statRuns     = "runs"
	statSteps    = "steps"
	statAdded    = "added"
	statReplaced = "replaced"
	statRemoved  = "removed"
	statMissed   = "missed"
	statSplits   = "splits"
	statJoins    = "joins"
	statChecks   = "checks"
)

var statNames = []string{
	statRuns,
	statSteps,
	statAdded,
	statReplaced,
	statRemoved,
	statMissed,
	statSplits,
	statJoins,
	statChecks,
}

// the common surface of both trees
type replayTree interface {
	ordered.Map[int, string]
	Verify() error
	Print(w io.Writer, printData bool) int
}

type replayer struct {
	log   *logger.L
	out   io.Writer
	stats *counter.Set

	script    *Script
	parent    *avl.Tree[int, string]
	recursive *avlrec.Tree[int, string]

	// set once split or concat has rebuilt the recursive tree, after
	// which shapes need no longer match
	restructured bool
}

// replay - run a script once, writing results to out
func replay(script *Script, out io.Writer, log *logger.L, stats *counter.Set) error {
	r := &replayer{
		log:    log,
		out:    out,
		stats:  stats,
		script: script,
	}

	stats.Get(statRuns).Increment()

	var err error
	if parentLinked == script.variant || bothVariants == script.variant {
		r.parent, err = avl.New[int, string](nil)
		if nil != err {
			return err
		}
	}
	if recursive == script.variant || bothVariants == script.variant {
		r.recursive, err = avlrec.New[int, string](nil)
		if nil != err {
			return err
		}
	}

	for _, key := range script.Keys {
		r.insert(key, strconv.Itoa(key))
	}
	if err := r.check("initial keys"); nil != err {
		return err
	}
	log.Debugf("loaded: %d initial keys", len(script.Keys))

	for i, op := range script.Operations {
		r.stats.Get(statSteps).Increment()
		if err := r.apply(op); nil != err {
			log.Errorf("step: %d  %s error: %s", i+1, op.Op, err)
			return err
		}
		if err := r.check(fmt.Sprintf("step %d %s", i+1, op.Op)); nil != err {
			return err
		}
	}

	r.report()
	return nil
}

// rerun - read the script again and replay it with fresh statistics
func rerun(scriptFileName string, out io.Writer, log *logger.L, stats *counter.Set) error {
	script, err := getScript(scriptFileName)
	if nil != err {
		log.Errorf("reread script: %q  error: %s", scriptFileName, err)
		return err
	}
	stats.Reset()
	return replay(script, out, log, stats)
}

// the trees in use, parent-linked first
func (r *replayer) trees() []replayTree {
	trees := make([]replayTree, 0, 2)
	if nil != r.parent {
		trees = append(trees, r.parent)
	}
	if nil != r.recursive {
		trees = append(trees, r.recursive)
	}
	return trees
}

func (r *replayer) apply(op Operation) error {
	switch op.Op {
	case opInsert:
		value := op.Value
		if "" == value {
			value = strconv.Itoa(op.Key)
		}
		added := r.insert(op.Key, value)
		fmt.Fprintf(r.out, "insert %d → %q: %s\n", op.Key, value, choose(added, "added", "replaced"))

	case opDelete:
		results := []string{}
		for _, t := range r.trees() {
			value, ok := t.Delete(op.Key)
			results = append(results, r.found(value, ok, statRemoved))
		}
		return r.same(fmt.Sprintf("delete %d", op.Key), results)

	case opDeleteMin, opDeleteMax:
		results := []string{}
		for _, t := range r.trees() {
			var key int
			var value string
			var ok bool
			if opDeleteMin == op.Op {
				key, value, ok = t.DeleteMin()
			} else {
				key, value, ok = t.DeleteMax()
			}
			results = append(results, choose(ok, strconv.Itoa(key)+" ", "")+r.found(value, ok, statRemoved))
		}
		return r.same(op.Op, results)

	case opSearch:
		results := []string{}
		for _, t := range r.trees() {
			value, ok := t.Search(op.Key)
			results = append(results, r.found(value, ok, ""))
		}
		return r.same(fmt.Sprintf("search %d", op.Key), results)

	case opSplit:
		return r.split(op)

	case opConcat:
		keys := op.Keys
		if 0 == len(keys) {
			keys = r.script.ConcatKeys
		}
		return r.concat(keys)

	default:
		return fault.ErrUnknownOperation
	}
	return nil
}

// insert into every tree, returns true if a node was added
func (r *replayer) insert(key int, value string) bool {
	added := false
	for _, t := range r.trees() {
		added = t.Insert(key, value)
	}
	if added {
		r.stats.Get(statAdded).Increment()
	} else {
		r.stats.Get(statReplaced).Increment()
	}
	return added
}

func (r *replayer) found(value string, ok bool, stat string) string {
	if !ok {
		r.stats.Get(statMissed).Increment()
		return "not found"
	}
	if "" != stat {
		r.stats.Get(stat).Increment()
	}
	return strconv.Quote(value)
}

// print one result and fail if the trees disagree
func (r *replayer) same(label string, results []string) error {
	for _, result := range results[1:] {
		if result != results[0] {
			r.log.Errorf("%s: results differ: %q", label, results)
			return fault.ErrContentMismatch
		}
	}
	fmt.Fprintf(r.out, "%s: %s\n", label, results[0])
	return nil
}

// split the recursive tree, show both halves and join them again
//
// the parent-linked tree cannot split, so it only drops the key when
// the split discarded it
func (r *replayer) split(op Operation) error {
	if nil == r.recursive {
		return fault.ErrUnsupportedOperation
	}
	r.stats.Get(statSplits).Increment()

	left, right, found := r.recursive.Split(op.Key, op.mode)
	for _, half := range []*avlrec.Tree[int, string]{left, right} {
		if err := half.Verify(); nil != err {
			return err
		}
	}
	fmt.Fprintf(r.out, "split %d %s: found: %v  left: %s  right: %s\n",
		op.Key, op.mode, found,
		r.sequence(left, ordered.InOrder), r.sequence(right, ordered.InOrder))

	r.recursive = left.Concat(right)
	r.stats.Get(statJoins).Increment()
	r.restructured = true

	if found && ordered.ExcludeKey == op.mode && nil != r.parent {
		r.parent.Delete(op.Key)
	}
	return nil
}

// append keys, which must all be greater than the current maximum
func (r *replayer) concat(keys []int) error {
	if nil == r.recursive {
		return fault.ErrUnsupportedOperation
	}

	other, err := avlrec.New[int, string](nil)
	if nil != err {
		return err
	}
	for _, key := range keys {
		other.Insert(key, strconv.Itoa(key))
	}

	high, _, ok := r.recursive.Max()
	low, _, otherOk := other.Min()
	if ok && otherOk && low <= high {
		return fault.ErrConcatOrder
	}

	count := other.Count()
	r.recursive.Concat(other)
	r.stats.Get(statJoins).Increment()
	r.stats.Get(statAdded).Add(uint64(count))
	r.restructured = true

	if nil != r.parent {
		for _, key := range keys {
			r.parent.Insert(key, strconv.Itoa(key))
		}
	}
	fmt.Fprintf(r.out, "concat: %d keys  count: %d\n", count, r.recursive.Count())
	return nil
}

// verify every tree and compare them
func (r *replayer) check(label string) error {
	r.stats.Get(statChecks).Increment()
	for _, t := range r.trees() {
		if err := t.Verify(); nil != err {
			r.log.Criticalf("%s: %T: %s", label, t, err)
			return err
		}
	}
	if nil == r.parent || nil == r.recursive {
		return nil
	}

	if r.restructured {
		a, _ := ordered.ToSlice[int, string](r.parent, ordered.InOrder)
		b, _ := ordered.ToSlice[int, string](r.recursive, ordered.InOrder)
		if !slices.Equal(a, b) {
			r.log.Errorf("%s: contents differ", label)
			return fault.ErrContentMismatch
		}
		return nil
	}

	a, _ := ordered.Keys[int, string](r.parent, ordered.PreOrder)
	b, _ := ordered.Keys[int, string](r.recursive, ordered.PreOrder)
	if !slices.Equal(a, b) || r.parent.Height() != r.recursive.Height() {
		r.log.Errorf("%s: shapes differ: %v  %v", label, a, b)
		return fault.ErrShapeMismatch
	}
	return nil
}

func (r *replayer) sequence(t ordered.Traverser[int, string], order ordered.Order) string {
	keys, err := ordered.Keys(t, order)
	if nil != err {
		return err.Error()
	}
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = strconv.Itoa(k)
	}
	return "[" + strings.Join(s, " ") + "]"
}

// final state of every tree
func (r *replayer) report() {
	names := map[variant]string{
		parentLinked: "parent",
		recursive:    "recursive",
	}
	for _, t := range r.trees() {
		name := names[recursive]
		if _, ok := t.(*avl.Tree[int, string]); ok {
			name = names[parentLinked]
		}
		fmt.Fprintf(r.out, "%s: count: %d  height: %d  %s: %s\n",
			name, t.Count(), t.Height(), r.script.order, r.sequence(t, r.script.order))
		if r.script.Print {
			t.Print(r.out, true)
		}
	}

	for _, name := range statNames {
		c := r.stats.Get(name)
		if c.IsZero() {
			continue
		}
		r.log.Infof("%s: %d", name, c.Uint64())
	}
}

func choose(condition bool, yes string, no string) string {
	if condition {
		return yes
	}
	return no
}
