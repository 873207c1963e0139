// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package task

import "fmt"

// Store is an ordered sequence of shared task handles. Positions form
// a dense 0-based index and each identity appears at most once; the
// slice order is the authoritative user-visible order and changes
// only through Insert, Remove, and Push.
//
// Index arguments are computed by callers from a prior Find, so an
// out-of-range index is a programming error and panics rather than
// returning a recoverable error.
type Store struct {
	tasks []*Task
}

// NewStore creates a store over the given tasks in the given order.
func NewStore(tasks []*Task) *Store {
	return &Store{tasks: tasks}
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Find returns the position of the task with the given handle's
// identity. Identity equality is used, not pointer or value equality.
func (s *Store) Find(task *Task) (int, bool) {
	for idx, candidate := range s.tasks {
		if candidate.id == task.id {
			return idx, true
		}
	}
	return 0, false
}

// Insert places the task at the given index, shifting subsequent
// entries right. The index must be in [0, Len]; the task's identity
// must not already be present.
func (s *Store) Insert(idx int, task *Task) {
	if idx < 0 || idx > len(s.tasks) {
		panic(fmt.Sprintf("task: insert index %d out of range [0, %d]", idx, len(s.tasks)))
	}
	if _, ok := s.Find(task); ok {
		panic(fmt.Sprintf("task: duplicate identity %d in store", task.id))
	}
	s.tasks = append(s.tasks, nil)
	copy(s.tasks[idx+1:], s.tasks[idx:])
	s.tasks[idx] = task
}

// Remove removes and returns the task at the given index, shifting
// subsequent entries left. The index must be less than Len.
func (s *Store) Remove(idx int) *Task {
	if idx < 0 || idx >= len(s.tasks) {
		panic(fmt.Sprintf("task: remove index %d out of range [0, %d)", idx, len(s.tasks)))
	}
	task := s.tasks[idx]
	copy(s.tasks[idx:], s.tasks[idx+1:])
	s.tasks[len(s.tasks)-1] = nil
	s.tasks = s.tasks[:len(s.tasks)-1]
	return task
}

// Push appends the task at the end of the store.
func (s *Store) Push(task *Task) {
	s.Insert(len(s.tasks), task)
}

// Get returns the task at the given index, if any.
func (s *Store) Get(idx int) (*Task, bool) {
	if idx < 0 || idx >= len(s.tasks) {
		return nil, false
	}
	return s.tasks[idx], true
}

// Tasks returns the stored handles in display order. The returned
// slice is a copy and stays valid across subsequent mutations.
func (s *Store) Tasks() []*Task {
	tasks := make([]*Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}
