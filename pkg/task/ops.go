// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package task

import "fmt"

// The four operation variants below implement ops.Op[*Store, *Task].
// Each carries exactly the forward inputs it was constructed with plus
// the slots its Exec populates for a later Undo. The result of either
// direction is the affected handle, or nil when the affected task no
// longer exists (undoing an Add).

// target describes a position relative to another task: immediately
// before it or immediately after it.
type target struct {
	before bool
	task   *Task
}

// insertTask inserts the task relative to the given target, or
// appends it when the target is nil.
func insertTask(store *Store, task *Task, to *target) *Task {
	if to == nil {
		store.Push(task)
		return task
	}
	idx, ok := store.Find(to.task)
	if !ok {
		// Operations only ever reference tasks they placed
		// themselves, so a missing target is a corrupted history.
		panic(fmt.Sprintf("task: target task %d not in store", to.task.id))
	}
	if !to.before {
		idx++
	}
	store.Insert(idx, task)
	return task
}

// removeTask removes the task with the given identity and returns the
// removed handle together with the index it occupied.
func removeTask(store *Store, task *Task) (*Task, int) {
	idx, ok := store.Find(task)
	if !ok {
		panic(fmt.Sprintf("task: task %d not in store", task.id))
	}
	return store.Remove(idx), idx
}

// updateTask overwrites the live task's content with other's and
// returns a snapshot of the content it had before.
func updateTask(task *Task, other *Task) *Task {
	before := task.Clone()
	task.updateFrom(other)
	return before
}

// addOp inserts a task, optionally after another one.
type addOp struct {
	task *Task
	// after is the task to insert behind; nil appends.
	after *Task
}

func newAddOp(task *Task, after *Task) *addOp {
	return &addOp{task: task, after: after}
}

func (o *addOp) Exec(store *Store) *Task {
	var to *target
	if o.after != nil {
		to = &target{before: false, task: o.after}
	}
	return insertTask(store, o.task, to)
}

// Undo locates the task by identity and removes it. No positional
// bookkeeping is needed: in a linear history the Add being undone is
// the most recent insertion, so identity alone relocates it.
func (o *addOp) Undo(store *Store) *Task {
	_, _ = removeTask(store, o.task)
	return nil
}

// removeOp removes a task, remembering the index it occupied so that
// Undo restores the exact position.
type removeOp struct {
	task *Task
	// position is populated by Exec.
	position int
}

func newRemoveOp(task *Task) *removeOp {
	return &removeOp{task: task}
}

func (o *removeOp) Exec(store *Store) *Task {
	_, idx := removeTask(store, o.task)
	o.position = idx
	return nil
}

func (o *removeOp) Undo(store *Store) *Task {
	store.Insert(o.position, o.task)
	return o.task
}

// updateOp overwrites a live task's content in place, capturing a
// snapshot of the prior content for Undo. The in-place overwrite is
// what keeps existing holders of the handle observing the new
// content without re-fetching.
type updateOp struct {
	task *Task
	// updated is the replacement snapshot.
	updated *Task
	// before is populated by Exec and swapped on every direction so
	// that Exec/Undo/Redo sequences stay faithful.
	before *Task
}

func newUpdateOp(task *Task, updated *Task) *updateOp {
	return &updateOp{task: task, updated: updated}
}

func (o *updateOp) Exec(store *Store) *Task {
	o.before = updateTask(o.task, o.updated)
	return o.task
}

func (o *updateOp) Undo(store *Store) *Task {
	before := o.before
	// Re-capture the current ("after") content so that a later redo
	// cycle restores it faithfully.
	o.before = updateTask(o.task, before)
	return o.task
}

// moveOp reorders a task from an index to a position relative to
// another task.
//
// Moving a task onto itself is a contract violation that callers must
// filter before constructing the operation; the store does not detect
// it.
type moveOp struct {
	from int
	to   target
	// task is populated by Exec with the moved handle.
	task *Task
}

func newMoveOp(from int, to target) *moveOp {
	return &moveOp{from: from, to: to}
}

func (o *moveOp) Exec(store *Store) *Task {
	removed := store.Remove(o.from)
	o.task = removed
	return insertTask(store, removed, &o.to)
}

func (o *moveOp) Undo(store *Store) *Task {
	removed, _ := removeTask(store, o.task)
	store.Insert(o.from, removed)
	return removed
}
