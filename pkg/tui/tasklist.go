// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"fmt"
	"strings"

	"github.com/taskwell/taskwell/pkg/tag"
	"github.com/taskwell/taskwell/pkg/task"
	"github.com/taskwell/taskwell/pkg/view"
)

// taskListBox displays one view's tasks and carries the cursor for
// that view. Mutations go through the task facade and stay undoable;
// after each one the cursor is re-resolved by task identity, because a
// mutation may have changed what the view shows and where.
type taskListBox struct {
	tasks  *task.Tasks
	view   *view.View
	toggle tag.Tag
	// selection indexes into the view's current task list.
	selection int
}

func newTaskListBox(tasks *task.Tasks, v *view.View, toggle tag.Tag, selection int) *taskListBox {
	box := &taskListBox{tasks: tasks, view: v, toggle: toggle}
	box.selectIdx(selection)
	return box
}

// selected returns the task under the cursor, if any.
func (b *taskListBox) selected() (*task.Task, bool) {
	return b.view.Nth(b.selection)
}

// selectIdx moves the cursor to the given index, clamped to the view's
// current size. It reports whether the cursor moved.
func (b *taskListBox) selectIdx(idx int) bool {
	if max := b.view.Len() - 1; idx > max {
		idx = max
	}
	if idx < 0 {
		idx = 0
	}
	if idx == b.selection {
		return false
	}
	b.selection = idx
	return true
}

// moveSelection moves the cursor by the given offset.
func (b *taskListBox) moveSelection(delta int) bool {
	return b.selectIdx(b.selection + delta)
}

// selectTask moves the cursor to the task with the given identity. It
// reports whether the view currently contains that task; if not the
// cursor is merely clamped.
func (b *taskListBox) selectTask(id task.ID) bool {
	if idx, ok := b.view.Position(id); ok {
		b.selectIdx(idx)
		return true
	}
	b.selectIdx(b.selection)
	return false
}

// toggleTag flips the toggle tag on the selected task through a
// reversible update. The task may leave the view as a result, in which
// case the cursor stays put (clamped).
func (b *taskListBox) toggleTag() bool {
	current, ok := b.selected()
	if !ok {
		return false
	}

	updated := current.Clone()
	if updated.HasTag(b.toggle) {
		updated.UnsetTag(b.toggle)
	} else {
		updated.SetTag(b.toggle)
	}
	b.tasks.Update(current, updated)

	b.selectTask(current.ID())
	return true
}

// setSummary replaces the selected task's summary through a reversible
// update.
func (b *taskListBox) setSummary(summary string) bool {
	current, ok := b.selected()
	if !ok {
		return false
	}

	updated := current.Clone()
	updated.SetSummary(summary)
	b.tasks.Update(current, updated)

	b.selectTask(current.ID())
	return true
}

// addTask creates a task after the cursor, tagged so that it appears
// in this view, and selects it.
func (b *taskListBox) addTask(summary string) *task.Task {
	after, _ := b.selected()
	added := b.tasks.Add(summary, b.view.RequiredTags(), after)
	b.selectTask(added.ID())
	return added
}

// removeSelected removes the task under the cursor.
func (b *taskListBox) removeSelected() bool {
	current, ok := b.selected()
	if !ok {
		return false
	}
	b.tasks.Remove(current)
	b.selectIdx(b.selection)
	return true
}

// moveSelectedUp swaps the selected task with its predecessor in the
// view, keeping the cursor on the moved task.
func (b *taskListBox) moveSelectedUp() bool {
	current, ok := b.selected()
	if !ok || b.selection == 0 {
		return false
	}
	above, ok := b.view.Nth(b.selection - 1)
	if !ok {
		return false
	}
	b.tasks.MoveBefore(current, above)
	b.selectTask(current.ID())
	return true
}

// moveSelectedDown swaps the selected task with its successor in the
// view.
func (b *taskListBox) moveSelectedDown() bool {
	current, ok := b.selected()
	if !ok {
		return false
	}
	below, ok := b.view.Nth(b.selection + 1)
	if !ok {
		return false
	}
	b.tasks.MoveAfter(current, below)
	b.selectTask(current.ID())
	return true
}

// render draws the visible window of the task list. The window scrolls
// to keep the cursor inside height rows.
func (b *taskListBox) render(styles Styles, width, height int) string {
	tasks := b.view.Tasks()
	if len(tasks) == 0 {
		return styles.Status.Render("<no tasks>")
	}
	if height < 1 {
		height = 1
	}

	offset := 0
	if b.selection >= height {
		offset = b.selection - height + 1
	}
	end := offset + height
	if end > len(tasks) {
		end = len(tasks)
	}

	var rows []string
	for idx := offset; idx < end; idx++ {
		t := tasks[idx]
		marker := "[ ]"
		style := styles.Row
		if t.HasTag(b.toggle) {
			marker = "[x]"
			style = styles.Complete
		}
		if idx == b.selection {
			style = styles.Selected
		}
		line := fmt.Sprintf("%s %s", marker, t.Summary())
		if width > 0 {
			style = style.MaxWidth(width)
		}
		rows = append(rows, style.Render(line))
	}
	return strings.Join(rows, "\n")
}
