// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package tui implements taskwell's interactive terminal interface.
//
// # Description
//
// The interface is a bubbletea program: a tab bar of views across the
// top, the active view's task list below it, a status line, and a
// single-line input field that appears while adding or editing a task.
// Every mutation goes through the task facade and is therefore
// undoable from the UI.
//
// # Thread Safety
//
// The model is owned by the bubbletea event loop and must not be
// touched from other goroutines.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskwell/taskwell/pkg/logging"
	"github.com/taskwell/taskwell/pkg/state"
	"github.com/taskwell/taskwell/pkg/task"
)

// =============================================================================
// Messages
// =============================================================================

// fileChangedMsg reports that a state file was modified outside the
// program.
type fileChangedMsg struct {
	path string
}

// =============================================================================
// Input Mode
// =============================================================================

// inputMode says what the input field, when visible, is editing.
type inputMode int

const (
	// inputNone means the task list has focus.
	inputNone inputMode = iota

	// inputAdd captures the summary of a task to be created.
	inputAdd

	// inputEdit captures the replacement summary for the selected
	// task.
	inputEdit
)

// =============================================================================
// Config
// =============================================================================

// Config wires the model to its collaborators.
type Config struct {
	// TaskState is the loaded task data.
	TaskState *state.TaskState

	// UI is the loaded UI configuration.
	UI *state.UIState

	// TasksPath is where task data is saved.
	TasksPath string

	// ConfigPath is where the UI configuration is saved.
	ConfigPath string

	// Changes optionally delivers paths of externally modified state
	// files; the UI then offers reloading.
	Changes <-chan string

	// Logger receives UI events. Nil falls back to a quiet logger.
	Logger *logging.Logger
}

// =============================================================================
// Model
// =============================================================================

// Model is the bubbletea model for the task manager.
type Model struct {
	taskState  *state.TaskState
	ui         *state.UIState
	tasksPath  string
	configPath string
	changes    <-chan string
	logger     *logging.Logger

	tabs  tabBar
	lists []*taskListBox
	input textinput.Model
	mode  inputMode

	styles Styles
	status string
	// reloadPending is set when a state file changed on disk and the
	// user has not decided yet.
	reloadPending bool

	width  int
	height int
}

// NewModel builds the model from loaded state.
func NewModel(config Config) *Model {
	logger := config.Logger
	if logger == nil {
		logger = logging.New(logging.Config{Quiet: true})
	}

	input := textinput.New()
	input.CharLimit = 0
	input.Prompt = "> "

	m := &Model{
		taskState:  config.TaskState,
		ui:         config.UI,
		tasksPath:  config.TasksPath,
		configPath: config.ConfigPath,
		changes:    config.Changes,
		logger:     logger,
		input:      input,
		styles:     DefaultStyles(),
	}
	m.rebuild()
	return m
}

// rebuild recreates the tab bar and the per-view list boxes from the
// current UI state. Used at construction and after a reload.
func (m *Model) rebuild() {
	names := make([]string, 0, len(m.ui.Views))
	lists := make([]*taskListBox, 0, len(m.ui.Views))
	for idx, v := range m.ui.Views {
		names = append(names, v.Name())
		selection := 0
		if idx < len(m.ui.Selections) && m.ui.Selections[idx] >= 0 {
			selection = m.ui.Selections[idx]
		}
		lists = append(lists, newTaskListBox(m.taskState.Tasks, v, m.ui.ToggleTag, selection))
	}
	m.tabs = newTabBar(names, m.ui.Selected)
	m.lists = lists
}

// active returns the list box of the active tab.
func (m *Model) active() *taskListBox {
	return m.lists[m.tabs.selected]
}

// Init starts listening for external file changes.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange blocks on the change channel and resurfaces the next
// notification as a message.
func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-m.changes
		if !ok {
			return nil
		}
		return fileChangedMsg{path: path}
	}
}

// =============================================================================
// Update
// =============================================================================

// Update handles a single event.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case fileChangedMsg:
		m.reloadPending = true
		m.status = fmt.Sprintf("%s changed on disk; press r to reload", msg.path)
		m.logger.Info("state file changed externally", "path", msg.path)
		return m, m.waitForChange()

	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

// updateList handles keys while the task list has focus.
func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		m.syncSelections()
		return m, tea.Quit

	case "h", "left":
		m.syncSelections()
		m.tabs.prev()
		m.ui.Selected = m.tabs.selected
	case "l", "right":
		m.syncSelections()
		m.tabs.next()
		m.ui.Selected = m.tabs.selected

	case "j", "down":
		m.active().moveSelection(1)
	case "k", "up":
		m.active().moveSelection(-1)
	case "g", "home":
		m.active().selectIdx(0)
	case "G", "end":
		m.active().selectIdx(m.active().view.Len() - 1)

	case "J":
		m.active().moveSelectedDown()
	case "K":
		m.active().moveSelectedUp()

	case " ", "space":
		m.active().toggleTag()

	case "a":
		m.mode = inputAdd
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		selected, ok := m.active().selected()
		if !ok {
			break
		}
		m.mode = inputEdit
		m.input.SetValue(selected.Summary())
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case "d":
		if m.active().removeSelected() {
			m.status = "task removed"
		}

	case "u":
		if _, ok := m.taskState.Tasks.Undo(); ok {
			m.followSelection()
			m.status = "undone"
		} else {
			m.status = "nothing to undo"
		}
	case "ctrl+r":
		if _, ok := m.taskState.Tasks.Redo(); ok {
			m.followSelection()
			m.status = "redone"
		} else {
			m.status = "nothing to redo"
		}

	case "w":
		m.save()

	case "r":
		if m.reloadPending {
			m.reload()
		}
	}
	return m, nil
}

// updateInput handles keys while the input field has focus.
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil

	case "enter":
		summary := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.closeInput()
		if summary == "" {
			return m, nil
		}
		switch mode {
		case inputAdd:
			added := m.active().addTask(summary)
			m.logger.Info("task added", "id", uint64(added.ID()))
			m.status = "task added"
		case inputEdit:
			m.active().setSummary(summary)
			m.status = "task updated"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.mode = inputNone
	m.input.Blur()
	m.input.SetValue("")
}

// followSelection re-clamps every view's cursor after an undo or redo
// changed the store underneath them.
func (m *Model) followSelection() {
	for _, box := range m.lists {
		box.selectIdx(box.selection)
	}
}

// syncSelections copies the live cursors back into the UI state so
// that saving and tab switches see them.
func (m *Model) syncSelections() {
	for idx, box := range m.lists {
		selection := -1
		if !box.view.IsEmpty() {
			selection = box.selection
		}
		if idx < len(m.ui.Selections) {
			m.ui.Selections[idx] = selection
		}
	}
}

// save persists both state files.
func (m *Model) save() {
	m.syncSelections()
	if err := m.taskState.Save(m.tasksPath); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		m.logger.Error("saving task state failed", "error", err)
		return
	}
	if err := m.ui.Save(m.configPath); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		m.logger.Error("saving UI config failed", "error", err)
		return
	}
	m.status = "saved"
	m.logger.Info("state saved", "tasks", m.taskState.Tasks.Len())
}

// reload replaces the in-memory state with the on-disk state,
// discarding unsaved changes and the undo history.
func (m *Model) reload() {
	taskState, err := state.LoadTaskState(m.tasksPath)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		m.logger.Error("reloading task state failed", "error", err)
		return
	}
	ui, err := state.LoadUIState(m.configPath, taskState)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		m.logger.Error("reloading UI config failed", "error", err)
		return
	}

	m.taskState = taskState
	m.ui = ui
	m.rebuild()
	m.reloadPending = false
	m.status = "reloaded"
	m.logger.Info("state reloaded", "tasks", taskState.Tasks.Len())
}

// =============================================================================
// View
// =============================================================================

// View renders the full screen.
func (m *Model) View() string {
	listHeight := m.height - 3
	if listHeight < 1 {
		listHeight = 10
	}

	var b strings.Builder
	b.WriteString(m.tabs.render(m.styles, m.width))
	b.WriteString("\n")
	b.WriteString(m.active().render(m.styles, m.width, listHeight))
	b.WriteString("\n")

	if m.mode != inputNone {
		b.WriteString(m.styles.Input.Render(m.input.View()))
	} else {
		b.WriteString(m.styles.Status.Render(m.statusLine()))
	}
	return b.String()
}

// statusLine is the bottom line: a transient message when present,
// otherwise a position indicator.
func (m *Model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	box := m.active()
	if box.view.IsEmpty() {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", box.selection+1, box.view.Len())
}

// Selected exposes the selected task for tests and callers embedding
// the model.
func (m *Model) Selected() (*task.Task, bool) {
	return m.active().selected()
}
