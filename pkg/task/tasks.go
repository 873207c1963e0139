// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package task

import (
	"fmt"

	"github.com/taskwell/taskwell/pkg/ops"
	"github.com/taskwell/taskwell/pkg/ser"
	"github.com/taskwell/taskwell/pkg/tag"
)

// maxUndoDepth is the number of operations kept in the undo history.
const maxUndoDepth = 64

// Tasks is the externally visible task management facade. It owns one
// store and one operation log and translates caller intent into
// reversible operations, so that every mutation performed through it
// can be undone and redone.
//
// Tasks is single-writer: a runtime guard panics on reentrant
// mutation, which would indicate a bug in the calling event loop.
type Tasks struct {
	templates *tag.Templates
	store     *Store
	log       *ops.Log[*Store, *Task]
	// mutating flags an in-flight mutation; see exclusive.
	mutating bool
}

// New creates an empty task collection backed by the given template
// registry.
func New(templates *tag.Templates) *Tasks {
	return &Tasks{
		templates: templates,
		store:     NewStore(nil),
		log:       ops.NewLog[*Store, *Task](maxUndoDepth),
	}
}

// FromSer rebuilds a task collection from its serialized form.
// Construction is atomic: on any validation failure (an unknown tag
// ID, a duplicate task ID) no partially filled collection is
// returned.
func FromSer(tasks ser.Tasks, templates *tag.Templates) (*Tasks, error) {
	handles := make([]*Task, 0, len(tasks))
	seen := make(map[ID]struct{}, len(tasks))

	for _, st := range tasks {
		task, err := fromSer(st, templates)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[task.id]; ok {
			return nil, fmt.Errorf("duplicate task ID %d", task.id)
		}
		seen[task.id] = struct{}{}
		handles = append(handles, task)
	}

	return &Tasks{
		templates: templates,
		store:     NewStore(handles),
		log:       ops.NewLog[*Store, *Task](maxUndoDepth),
	}, nil
}

// ToSer converts the collection into its serializable form: the
// current display order with each task's identity, summary, and tag
// IDs.
func (t *Tasks) ToSer() ser.Tasks {
	tasks := make(ser.Tasks, 0, t.store.Len())
	for _, task := range t.store.Tasks() {
		tasks = append(tasks, task.ToSer())
	}
	return tasks
}

// Templates returns the shared tag template registry.
func (t *Tasks) Templates() *tag.Templates {
	return t.templates
}

// All returns the task handles in display order.
func (t *Tasks) All() []*Task {
	return t.store.Tasks()
}

// Len returns the number of tasks.
func (t *Tasks) Len() int {
	return t.store.Len()
}

// Get returns the task at the given display position, if any.
func (t *Tasks) Get(idx int) (*Task, bool) {
	return t.store.Get(idx)
}

// Find returns the live handle for the given identity. The UI uses
// this to re-resolve "the task that used to be selected" after a
// mutation changed the ordering.
func (t *Tasks) Find(id ID) (*Task, bool) {
	for _, task := range t.store.Tasks() {
		if task.id == id {
			return task, true
		}
	}
	return nil, false
}

// Position returns the display position of the task with the given
// identity.
func (t *Tasks) Position(task *Task) (int, bool) {
	return t.store.Find(task)
}

// Add creates a new task with the given summary and tags and inserts
// it after the given task, or at the end when after is nil. It
// returns the inserted handle.
func (t *Tasks) Add(summary string, tags []tag.Tag, after *Task) *Task {
	defer t.exclusive()()

	task := NewTask(summary, tags, t.templates)
	return t.log.Exec(newAddOp(task, after), t.store)
}

// Remove removes the given task.
func (t *Tasks) Remove(task *Task) {
	defer t.exclusive()()

	t.log.Exec(newRemoveOp(task), t.store)
}

// Update overwrites the live task's content with the given
// replacement snapshot. Holders of the handle observe the new content
// immediately; the identity is unchanged.
func (t *Tasks) Update(task *Task, updated *Task) {
	defer t.exclusive()()

	t.log.Exec(newUpdateOp(task, updated), t.store)
}

// MoveBefore reorders toMove to the position immediately before
// other. Moving a task before itself is a no-op.
func (t *Tasks) MoveBefore(toMove *Task, other *Task) {
	t.move(toMove, other, true)
}

// MoveAfter reorders toMove to the position immediately after other.
// Moving a task after itself is a no-op.
func (t *Tasks) MoveAfter(toMove *Task, other *Task) {
	t.move(toMove, other, false)
}

func (t *Tasks) move(toMove *Task, other *Task, before bool) {
	// The store does not support moving a task onto itself; filter
	// it here so that no operation is recorded for it.
	if toMove.id == other.id {
		return
	}
	defer t.exclusive()()

	idx, ok := t.store.Find(toMove)
	if !ok {
		panic(fmt.Sprintf("task: task %d not in store", toMove.id))
	}
	t.log.Exec(newMoveOp(idx, target{before: before, task: other}), t.store)
}

// Undo reverts the most recent operation. It returns the handle the
// reverted operation reports (nil when the operation's undo removes a
// task) and whether anything was undone at all.
func (t *Tasks) Undo() (*Task, bool) {
	defer t.exclusive()()

	return t.log.Undo(t.store)
}

// Redo re-applies the most recently undone operation.
func (t *Tasks) Redo() (*Task, bool) {
	defer t.exclusive()()

	return t.log.Redo(t.store)
}

// UndoDepth returns the number of operations available to Undo.
func (t *Tasks) UndoDepth() int {
	return t.log.Depth()
}

// RedoDepth returns the number of operations available to Redo.
func (t *Tasks) RedoDepth() int {
	return t.log.RedoDepth()
}

// exclusive acquires the single-writer guard and returns the release
// function. A second acquisition while one is outstanding means a
// caller reentered the facade mid-mutation; that is a fatal bug, not
// a recoverable condition.
func (t *Tasks) exclusive() func() {
	if t.mutating {
		panic("task: reentrant mutation of Tasks")
	}
	t.mutating = true
	return func() { t.mutating = false }
}
