// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ser

// Task is a serializable task record.
//
// Tasks only carry an ID in serialized form; the in-memory identity is
// re-established from it on load so that references loaded from disk
// and identifiers allocated at runtime never collide.
type Task struct {
	ID      uint64 `json:"id" validate:"required"`
	Summary string `json:"summary"`
	Tags    []Tag  `json:"tags,omitempty" validate:"omitempty,dive"`
}

// Tasks is a list of serializable tasks in display order. The slice
// order is authoritative; there is no separate position field.
type Tasks []Task

// TaskState combines the tag templates and the ordered task list into
// the single document persisted as the task state file.
type TaskState struct {
	Templates Templates `json:"templates,omitempty" validate:"omitempty,dive"`
	Tasks     Tasks     `json:"tasks,omitempty" validate:"omitempty,dive"`
}
