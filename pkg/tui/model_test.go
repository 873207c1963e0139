// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskwell/taskwell/pkg/state"
	"github.com/taskwell/taskwell/pkg/tag"
	"github.com/taskwell/taskwell/pkg/view"
)

// createTestModel builds a model over three tasks ("one" complete,
// "two" and "three" open) with an "all" and a "done" view.
func createTestModel(t *testing.T) *Model {
	t.Helper()

	taskState := state.NewTaskState()
	complete, ok := taskState.Templates.InstantiateFromName(tag.CompleteTagName)
	if !ok {
		t.Fatal("complete tag missing from fresh registry")
	}
	taskState.Tasks.Add("one", []tag.Tag{complete}, nil)
	taskState.Tasks.Add("two", nil, nil)
	taskState.Tasks.Add("three", nil, nil)

	ui := &state.UIState{
		Views: []*view.View{
			view.NewBuilder(taskState.Tasks).Build("all"),
			view.NewBuilder(taskState.Tasks).And(view.Pos(complete)).Build("done"),
		},
		Selections: []int{-1, -1},
		Selected:   0,
		ToggleTag:  complete,
	}

	dir := t.TempDir()
	return NewModel(Config{
		TaskState:  taskState,
		UI:         ui,
		TasksPath:  filepath.Join(dir, "tasks.json"),
		ConfigPath: filepath.Join(dir, "config.yaml"),
	})
}

func press(t *testing.T, m tea.Model, key string) tea.Model {
	t.Helper()

	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+r":
		msg = tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next
}

func selectedSummary(t *testing.T, m *Model) string {
	t.Helper()

	selected, ok := m.Selected()
	if !ok {
		t.Fatal("no task selected")
	}
	return selected.Summary()
}

func TestNewModelStartsOnFirstTask(t *testing.T) {
	m := createTestModel(t)

	if got := selectedSummary(t, m); got != "one" {
		t.Errorf("expected selection on 'one', got %q", got)
	}
	if m.tabs.selected != 0 {
		t.Errorf("expected first tab active, got %d", m.tabs.selected)
	}
}

func TestSelectionMovement(t *testing.T) {
	m := createTestModel(t)

	press(t, m, "j")
	if got := selectedSummary(t, m); got != "two" {
		t.Errorf("after j expected 'two', got %q", got)
	}

	press(t, m, "G")
	if got := selectedSummary(t, m); got != "three" {
		t.Errorf("after G expected 'three', got %q", got)
	}

	// Moving past the end stays on the last task.
	press(t, m, "j")
	if got := selectedSummary(t, m); got != "three" {
		t.Errorf("after j at end expected 'three', got %q", got)
	}

	press(t, m, "g")
	if got := selectedSummary(t, m); got != "one" {
		t.Errorf("after g expected 'one', got %q", got)
	}

	press(t, m, "k")
	if got := selectedSummary(t, m); got != "one" {
		t.Errorf("after k at start expected 'one', got %q", got)
	}
}

func TestTabSwitchingFiltersTasks(t *testing.T) {
	m := createTestModel(t)

	press(t, m, "l")
	if m.tabs.selected != 1 {
		t.Fatalf("expected second tab active, got %d", m.tabs.selected)
	}
	if got := m.active().view.Len(); got != 1 {
		t.Errorf("expected 1 task in 'done' view, got %d", got)
	}
	if got := selectedSummary(t, m); got != "one" {
		t.Errorf("expected 'one' in 'done' view, got %q", got)
	}

	// Wraps around.
	press(t, m, "l")
	if m.tabs.selected != 0 {
		t.Errorf("expected wrap to first tab, got %d", m.tabs.selected)
	}
	press(t, m, "h")
	if m.tabs.selected != 1 {
		t.Errorf("expected wrap back to second tab, got %d", m.tabs.selected)
	}
}

func TestAddTaskThroughInput(t *testing.T) {
	m := createTestModel(t)

	press(t, m, "a")
	if m.mode != inputAdd {
		t.Fatalf("expected add input mode, got %d", m.mode)
	}
	press(t, m, "new task")
	press(t, m, "enter")

	if m.mode != inputNone {
		t.Errorf("expected input closed after enter")
	}
	if got := m.taskState.Tasks.Len(); got != 4 {
		t.Fatalf("expected 4 tasks, got %d", got)
	}
	// Inserted after the selection and selected.
	if got := selectedSummary(t, m); got != "new task" {
		t.Errorf("expected new task selected, got %q", got)
	}
	second, _ := m.taskState.Tasks.Get(1)
	if second.Summary() != "new task" {
		t.Errorf("expected new task at position 1, got %q", second.Summary())
	}
}

func TestAddInFilteredViewTagsTheTask(t *testing.T) {
	m := createTestModel(t)

	press(t, m, "l")
	press(t, m, "a")
	press(t, m, "also done")
	press(t, m, "enter")

	if got := m.active().view.Len(); got != 2 {
		t.Fatalf("expected new task to appear in 'done' view, got %d tasks", got)
	}
	added, ok := m.Selected()
	if !ok || added.Summary() != "also done" {
		t.Fatalf("expected 'also done' selected")
	}
	if !added.HasTag(m.ui.ToggleTag) {
		t.Error("expected task created in 'done' view to carry the complete tag")
	}
}

func TestEscapeCancelsInput(t *testing.T) {
	m := createTestModel(t)

	press(t, m, "a")
	press(t, m, "discarded")
	press(t, m, "esc")

	if m.mode != inputNone {
		t.Errorf("expected input closed after esc")
	}
	if got := m.taskState.Tasks.Len(); got != 3 {
		t.Errorf("expected no task added, got %d tasks", got)
	}
}

func TestEmptySummaryAddsNothing(t *testing.T) {
	m := createTestModel(t)

	press(t, m, "a")
	press(t, m, "   ")
	press(t, m, "enter")

	if got := m.taskState.Tasks.Len(); got != 3 {
		t.Errorf("expected no task added for blank summary, got %d tasks", got)
	}
}

func TestEditRewritesSummary(t *testing.T) {
	m := createTestModel(t)

	press(t, m, "e")
	if m.input.Value() != "one" {
		t.Fatalf("expected input prefilled with 'one', got %q", m.input.Value())
	}
	press(t, m, " revised")
	press(t, m, "enter")

	if got := selectedSummary(t, m); got != "one revised" {
		t.Errorf("expected edited summary, got %q", got)
	}
}

func TestToggleTagAndUndo(t *testing.T) {
	m := createTestModel(t)

	press(t, m, "j")
	press(t, m, " ")
	selected, _ := m.Selected()
	if !selected.HasTag(m.ui.ToggleTag) {
		t.Fatal("expected toggle to set the tag")
	}

	press(t, m, "u")
	if selected.HasTag(m.ui.ToggleTag) {
		t.Error("expected undo to clear the tag")
	}

	press(t, m, "ctrl+r")
	if !selected.HasTag(m.ui.ToggleTag) {
		t.Error("expected redo to set the tag again")
	}
}

func TestToggleCanRemoveTaskFromFilteredView(t *testing.T) {
	m := createTestModel(t)

	press(t, m, "l")
	press(t, m, " ")

	if !m.active().view.IsEmpty() {
		t.Error("expected 'done' view to be empty after untoggling its only task")
	}
	if _, ok := m.Selected(); ok {
		t.Error("expected no selection in an empty view")
	}
}

func TestDeleteAndUndoRestoresPosition(t *testing.T) {
	m := createTestModel(t)

	press(t, m, "j")
	press(t, m, "d")
	if got := m.taskState.Tasks.Len(); got != 2 {
		t.Fatalf("expected 2 tasks after delete, got %d", got)
	}
	if got := selectedSummary(t, m); got != "three" {
		t.Errorf("expected selection to fall on 'three', got %q", got)
	}

	press(t, m, "u")
	summaries := make([]string, 0, 3)
	for _, task := range m.taskState.Tasks.All() {
		summaries = append(summaries, task.Summary())
	}
	if strings.Join(summaries, ",") != "one,two,three" {
		t.Errorf("expected original order restored, got %v", summaries)
	}
}

func TestReorderKeepsCursorOnTask(t *testing.T) {
	m := createTestModel(t)

	press(t, m, "J")
	if got := selectedSummary(t, m); got != "one" {
		t.Errorf("expected cursor to follow moved task, got %q", got)
	}
	first, _ := m.taskState.Tasks.Get(0)
	if first.Summary() != "two" {
		t.Errorf("expected 'two' first after move, got %q", first.Summary())
	}

	press(t, m, "K")
	first, _ = m.taskState.Tasks.Get(0)
	if first.Summary() != "one" {
		t.Errorf("expected 'one' first after moving back, got %q", first.Summary())
	}
}

func TestSaveWritesBothFiles(t *testing.T) {
	m := createTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m = next.(*Model)
	if m.status != "saved" {
		t.Fatalf("expected 'saved' status, got %q", m.status)
	}

	loaded, err := state.LoadTaskState(m.tasksPath)
	if err != nil {
		t.Fatalf("loading saved task state failed: %v", err)
	}
	if got := loaded.Tasks.Len(); got != 3 {
		t.Errorf("expected 3 saved tasks, got %d", got)
	}
	if _, err := state.LoadUIState(m.configPath, loaded); err != nil {
		t.Errorf("loading saved UI config failed: %v", err)
	}
}

func TestFileChangeOffersReload(t *testing.T) {
	m := createTestModel(t)

	next, _ := m.Update(fileChangedMsg{path: m.tasksPath})
	m = next.(*Model)
	if !m.reloadPending {
		t.Fatal("expected reload to be pending")
	}
	if !strings.Contains(m.status, "press r to reload") {
		t.Errorf("expected reload hint in status, got %q", m.status)
	}

	// Save first so the reload has something sensible to read.
	press(t, m, "w")
	press(t, m, "a")
	// Abandon input; reload only works from list mode.
	press(t, m, "esc")
	press(t, m, "r")
	if m.reloadPending {
		t.Error("expected reload to clear the pending flag")
	}
	if got := m.taskState.Tasks.Len(); got != 3 {
		t.Errorf("expected 3 tasks after reload, got %d", got)
	}
}

func TestViewRendersTabsTasksAndStatus(t *testing.T) {
	m := createTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(*Model)

	out := m.View()
	for _, want := range []string{"all", "done", "one", "two", "three", "1/3"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected rendered view to contain %q", want)
		}
	}
	if !strings.Contains(out, "[x] one") {
		t.Errorf("expected completed task marker for 'one'")
	}
}

func TestQuitSyncsSelections(t *testing.T) {
	m := createTestModel(t)

	press(t, m, "j")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.ui.Selections[0] != 1 {
		t.Errorf("expected selection persisted as 1, got %d", m.ui.Selections[0])
	}
}
