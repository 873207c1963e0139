// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ops provides a bounded, reversible operation log.
//
// # Description
//
// Every mutation of a store is described by an Op: a self-contained
// value that knows how to apply itself (Exec) and how to restore the
// exact pre-application state (Undo). The Log drives Exec/Undo/Redo
// and owns the undo and redo stacks; no other code inspects them.
//
// # Thread Safety
//
// Log is not safe for concurrent use. It is designed for the
// single-threaded event loop of an interactive application.
package ops

// Op describes a single reversible mutation of a store of type S,
// producing a result of type R in both directions.
//
// Exec applies the forward mutation and returns the same result a
// caller would see from a direct call. Undo restores the store to its
// exact pre-Exec arrangement. Implementations may populate internal
// slots during Exec (for example the index an element was removed
// from) that a later Undo depends on; the Log guarantees that Undo is
// only ever invoked on an Op whose Exec ran last.
type Op[S, R any] interface {
	// Exec applies the operation to the given store.
	Exec(store S) R

	// Undo reverts the effect of the preceding Exec call.
	Undo(store S) R
}

// Log is a bounded-depth history of executed operations.
//
// The undo stack never grows beyond the configured maximum; once the
// limit is exceeded the oldest retained operation is evicted and its
// effect becomes permanently unrecoverable. That is a deliberate
// bounded-memory tradeoff.
type Log[S, R any] struct {
	// max is the maximum number of operations kept on the undo stack.
	max int
	// undo holds executed operations, oldest first.
	undo []Op[S, R]
	// redo holds undone operations, oldest first.
	redo []Op[S, R]
}

// NewLog creates an empty operation log retaining at most max
// operations.
func NewLog[S, R any](max int) *Log[S, R] {
	if max <= 0 {
		panic("ops: log depth must be positive")
	}
	return &Log[S, R]{max: max}
}

// Exec executes the given operation against the store and records it
// for a later Undo. Executing any operation discards the entire redo
// history: the two stacks are mutually exclusive branches and there is
// no branching undo tree.
func (l *Log[S, R]) Exec(op Op[S, R], store S) R {
	result := op.Exec(store)

	if len(l.undo) >= l.max {
		// Evict from the bottom, i.e., the oldest operation.
		n := copy(l.undo, l.undo[len(l.undo)-l.max+1:])
		clear(l.undo[n:])
		l.undo = l.undo[:n]
	}
	l.undo = append(l.undo, op)
	clear(l.redo)
	l.redo = l.redo[:0]

	return result
}

// Undo reverts the most recently executed operation. The second return
// value reports whether anything was undone; an empty history is a
// no-op signal, not an error.
func (l *Log[S, R]) Undo(store S) (R, bool) {
	if len(l.undo) == 0 {
		var zero R
		return zero, false
	}
	op := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]

	result := op.Undo(store)
	l.redo = append(l.redo, op)
	return result, true
}

// Redo re-applies the most recently undone operation. The second
// return value reports whether anything was redone.
func (l *Log[S, R]) Redo(store S) (R, bool) {
	if len(l.redo) == 0 {
		var zero R
		return zero, false
	}
	op := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]

	result := op.Exec(store)
	l.undo = append(l.undo, op)
	return result, true
}

// Depth returns the number of operations currently available to Undo.
func (l *Log[S, R]) Depth() int {
	return len(l.undo)
}

// RedoDepth returns the number of operations currently available to
// Redo.
func (l *Log[S, R]) RedoDepth() int {
	return len(l.redo)
}
