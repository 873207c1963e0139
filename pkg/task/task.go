// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package task implements taskwell's core: an ordered, identity
// addressed store of shared task records whose every mutation flows
// through a bounded, reversible operation log.
//
// # Description
//
// A Task is held behind a shared pointer. The store, the operation
// log's captured snapshots, and external holders such as a UI
// selection all reference the same logical task; an in-place update
// through any of them is observed by all, while Clone produces a
// deep, frozen snapshot that is not.
//
// All mutation goes through the Tasks facade so that it is recorded
// and reversible. Direct mutation of a task that lives in a store
// would bypass the undo history.
//
// # Thread Safety
//
// The package is single-writer and not safe for concurrent use; a
// runtime guard in Tasks fails fast on reentrant mutation.
package task

import (
	"fmt"
	"sort"

	"github.com/taskwell/taskwell/pkg/ser"
	"github.com/taskwell/taskwell/pkg/tag"
)

// Task is a single task record. Share it by pointer; copy it with
// Clone.
type Task struct {
	// id never changes after creation.
	id      ID
	summary string
	tags    map[tag.ID]tag.Tag
	// templates is the shared registry the tags were instantiated
	// from.
	templates *tag.Templates
}

// NewTask creates a task with a freshly allocated ID.
func NewTask(summary string, tags []tag.Tag, templates *tag.Templates) *Task {
	task := &Task{
		id:        allocateID(),
		summary:   summary,
		tags:      make(map[tag.ID]tag.Tag, len(tags)),
		templates: templates,
	}
	for _, t := range tags {
		task.tags[t.ID()] = t
	}
	return task
}

// fromSer rebuilds a task from its serialized form, re-instantiating
// its tags from the given registry. A tag ID without a matching
// template is a validation error.
func fromSer(t ser.Task, templates *tag.Templates) (*Task, error) {
	tags := make(map[tag.ID]tag.Tag, len(t.Tags))
	for _, st := range t.Tags {
		instantiated, ok := templates.Instantiate(tag.ID(st.ID))
		if !ok {
			return nil, fmt.Errorf("task %d references unknown tag ID %d", t.ID, st.ID)
		}
		tags[instantiated.ID()] = instantiated
	}

	id := ID(t.ID)
	reserveIDs(id)
	return &Task{
		id:        id,
		summary:   t.Summary,
		tags:      tags,
		templates: templates,
	}, nil
}

// ID returns the task's permanent identity.
func (t *Task) ID() ID { return t.id }

// Summary returns the task's summary text.
func (t *Task) Summary() string { return t.summary }

// SetSummary changes the task's summary text.
//
// Like all setters this mutates the shared record in place; use it on
// a Clone and submit the clone through Tasks.Update to keep the
// change reversible.
func (t *Task) SetSummary(summary string) { t.summary = summary }

// Tags returns the task's tags ordered by tag ID.
func (t *Task) Tags() []tag.Tag {
	tags := make([]tag.Tag, 0, len(t.tags))
	for _, tg := range t.tags {
		tags = append(tags, tg)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID() < tags[j].ID() })
	return tags
}

// HasTag reports whether the given tag is set on the task.
func (t *Task) HasTag(tg tag.Tag) bool {
	_, ok := t.tags[tg.ID()]
	return ok
}

// SetTag ensures the given tag is set and reports whether the task
// changed.
func (t *Task) SetTag(tg tag.Tag) bool {
	if t.HasTag(tg) {
		return false
	}
	t.tags[tg.ID()] = tg
	return true
}

// UnsetTag ensures the given tag is not set and reports whether the
// task changed.
func (t *Task) UnsetTag(tg tag.Tag) bool {
	if !t.HasTag(tg) {
		return false
	}
	delete(t.tags, tg.ID())
	return true
}

// Templates returns the registry the task's tags come from.
func (t *Task) Templates() *tag.Templates { return t.templates }

// Clone returns a deep copy of the task: a frozen snapshot sharing
// the identity and the templates registry but none of the mutable
// state.
func (t *Task) Clone() *Task {
	tags := make(map[tag.ID]tag.Tag, len(t.tags))
	for id, tg := range t.tags {
		tags[id] = tg
	}
	return &Task{
		id:        t.id,
		summary:   t.summary,
		tags:      tags,
		templates: t.templates,
	}
}

// updateFrom overwrites the task's content with other's, keeping the
// identity. Every holder of the shared pointer observes the change.
func (t *Task) updateFrom(other *Task) {
	t.summary = other.summary
	t.tags = make(map[tag.ID]tag.Tag, len(other.tags))
	for id, tg := range other.tags {
		t.tags[id] = tg
	}
	t.templates = other.templates
}

// ToSer converts the task into its serializable form.
func (t *Task) ToSer() ser.Task {
	var tags []ser.Tag
	for _, tg := range t.Tags() {
		tags = append(tags, tg.ToSer())
	}
	return ser.Task{
		ID:      uint64(t.id),
		Summary: t.summary,
		Tags:    tags,
	}
}
