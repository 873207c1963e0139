// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell/pkg/tag"
)

// newTestTask creates a detached task with its own registry.
func newTestTask(summary string) *Task {
	return NewTask(summary, nil, tag.NewTemplates())
}

// summaries flattens a store into its ordered summary texts.
func summaries(s *Store) []string {
	var out []string
	for _, task := range s.Tasks() {
		out = append(out, task.Summary())
	}
	return out
}

func TestStoreInsertRemovePush(t *testing.T) {
	store := NewStore(nil)
	store.Push(newTestTask("one"))
	store.Push(newTestTask("three"))
	store.Insert(1, newTestTask("two"))
	require.Equal(t, []string{"one", "two", "three"}, summaries(store))

	removed := store.Remove(1)
	assert.Equal(t, "two", removed.Summary())
	assert.Equal(t, []string{"one", "three"}, summaries(store))
}

func TestStoreFindUsesIdentity(t *testing.T) {
	store := NewStore(nil)
	task := newTestTask("original")
	store.Push(newTestTask("first"))
	store.Push(task)

	// A deep copy denotes the same logical task even after the live
	// record diverged from it.
	snapshot := task.Clone()
	task.SetSummary("renamed")

	idx, ok := store.Find(snapshot)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = store.Find(newTestTask("stranger"))
	assert.False(t, ok)
}

func TestStoreGet(t *testing.T) {
	store := NewStore([]*Task{newTestTask("only")})

	task, ok := store.Get(0)
	require.True(t, ok)
	assert.Equal(t, "only", task.Summary())

	_, ok = store.Get(1)
	assert.False(t, ok)
	_, ok = store.Get(-1)
	assert.False(t, ok)
}

func TestStoreInsertOutOfRangePanics(t *testing.T) {
	store := NewStore(nil)
	assert.Panics(t, func() { store.Insert(1, newTestTask("x")) })
	assert.Panics(t, func() { store.Remove(0) })
}

func TestStoreRejectsDuplicateIdentity(t *testing.T) {
	store := NewStore(nil)
	task := newTestTask("x")
	store.Push(task)
	assert.Panics(t, func() { store.Push(task.Clone()) })
}

func TestStoreTasksIsASnapshot(t *testing.T) {
	store := NewStore(nil)
	store.Push(newTestTask("one"))

	snapshot := store.Tasks()
	store.Push(newTestTask("two"))
	assert.Len(t, snapshot, 1)
	assert.Equal(t, 2, store.Len())
}
