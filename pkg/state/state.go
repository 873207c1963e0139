// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package state persists and restores taskwell's task data and UI
// configuration.
//
// # Description
//
// Task data (tag templates plus the ordered task list) lives in a
// JSON file; the UI configuration (views, selected tab, toggle tag)
// lives in a separate YAML file so that users can edit it without
// touching their data. Loading validates the documents and fails
// atomically: on any error nothing is partially constructed. Saving
// writes through a uniquely named temporary file and renames it into
// place, so a crash can never leave a half-written state file.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/taskwell/taskwell/pkg/ser"
	"github.com/taskwell/taskwell/pkg/tag"
	"github.com/taskwell/taskwell/pkg/task"
	"github.com/taskwell/taskwell/pkg/view"
)

// TaskState is the in-memory form of the persisted task data: the
// shared tag template registry and the task collection built on it.
type TaskState struct {
	Templates *tag.Templates
	Tasks     *task.Tasks
}

// NewTaskState creates an empty task state with a fresh registry.
func NewTaskState() *TaskState {
	templates := tag.NewTemplates()
	return &TaskState{
		Templates: templates,
		Tasks:     task.New(templates),
	}
}

// LoadTaskState reads task state from the given JSON file. A missing
// file yields an empty state; an invalid one yields an error and no
// state at all.
func LoadTaskState(path string) (*TaskState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewTaskState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task state %s: %w", path, err)
	}

	var doc ser.TaskState
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode task state %s: %w", path, err)
	}
	if err := ser.Validate(&doc); err != nil {
		return nil, fmt.Errorf("validate task state %s: %w", path, err)
	}

	templates, err := tag.FromSer(doc.Templates)
	if err != nil {
		return nil, fmt.Errorf("load task state %s: %w", path, err)
	}
	tasks, err := task.FromSer(doc.Tasks, templates)
	if err != nil {
		return nil, fmt.Errorf("load task state %s: %w", path, err)
	}

	return &TaskState{Templates: templates, Tasks: tasks}, nil
}

// Save writes the task state to the given path as JSON.
func (s *TaskState) Save(path string) error {
	doc := ser.TaskState{
		Templates: s.Templates.ToSer(),
		Tasks:     s.Tasks.ToSer(),
	}
	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode task state: %w", err)
	}
	return writeAtomic(path, append(data, '\n'))
}

// UIState is the in-memory form of the persisted UI configuration.
type UIState struct {
	// Views are the task filters shown as tabs, in tab order.
	Views []*view.View
	// Selections remembers the per-view selection index, parallel to
	// Views; -1 means no remembered selection.
	Selections []int
	// Selected is the index of the active view.
	Selected int
	// ToggleTag is the tag toggled by the user's toggle action.
	ToggleTag tag.Tag
}

// LoadUIState reads the UI configuration from the given YAML file and
// resolves it against the task state. A missing file yields the
// default configuration: a single "all" view and the "complete" tag
// as toggle tag.
func LoadUIState(path string, taskState *TaskState) (*UIState, error) {
	var doc ser.UIConfig

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults below.
	case err != nil:
		return nil, fmt.Errorf("read UI config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode UI config %s: %w", path, err)
		}
		if err := ser.Validate(&doc); err != nil {
			return nil, fmt.Errorf("validate UI config %s: %w", path, err)
		}
	}

	views := make([]*view.View, 0, len(doc.Views))
	selections := make([]int, 0, len(doc.Views))
	for _, vs := range doc.Views {
		v, err := view.FromSer(vs.View, taskState.Templates, taskState.Tasks)
		if err != nil {
			return nil, fmt.Errorf("load UI config %s: %w", path, err)
		}
		views = append(views, v)
		selection := -1
		if vs.Selected != nil {
			selection = *vs.Selected
		}
		selections = append(selections, selection)
	}
	// A view capturing all tasks is always available.
	if len(views) == 0 {
		views = append(views, view.NewBuilder(taskState.Tasks).Build("all"))
		selections = append(selections, -1)
	}

	var toggle tag.Tag
	if doc.ToggleTag != nil {
		resolved, ok := taskState.Templates.Instantiate(tag.ID(doc.ToggleTag.ID))
		if !ok {
			return nil, fmt.Errorf("load UI config %s: unknown toggle tag ID %d", path, doc.ToggleTag.ID)
		}
		toggle = resolved
	} else {
		toggle = taskState.Templates.Allocate(tag.CompleteTagName)
	}

	selected := 0
	if doc.Selected != nil && *doc.Selected >= 0 && *doc.Selected < len(views) {
		selected = *doc.Selected
	}

	return &UIState{
		Views:      views,
		Selections: selections,
		Selected:   selected,
		ToggleTag:  toggle,
	}, nil
}

// Save writes the UI configuration to the given path as YAML.
func (s *UIState) Save(path string) error {
	doc := ser.UIConfig{Selected: &s.Selected}
	toggleTag := s.ToggleTag.ToSer()
	doc.ToggleTag = &toggleTag

	for idx, v := range s.Views {
		vs := ser.ViewState{View: v.ToSer()}
		if idx < len(s.Selections) && s.Selections[idx] >= 0 {
			selection := s.Selections[idx]
			vs.Selected = &selection
		}
		doc.Views = append(doc.Views, vs)
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode UI config: %w", err)
	}
	return writeAtomic(path, data)
}

// writeAtomic writes data to path through a uniquely named temporary
// file in the same directory followed by a rename.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create state directory %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
