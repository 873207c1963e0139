// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/pkg/logging"
	"github.com/taskwell/taskwell/pkg/state"
	"github.com/taskwell/taskwell/pkg/tui"
)

// runUI loads the persisted state and starts the interactive
// interface.
func runUI(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("taskwell is interactive and requires a terminal")
	}

	tasksFile, configFile, err := resolvePaths()
	if err != nil {
		return err
	}

	level := logging.LevelInfo
	if verbose {
		level = logging.LevelDebug
	}
	// Quiet: stderr belongs to the TUI while it runs.
	logger := logging.New(logging.Config{
		Level:   level,
		LogDir:  logDir,
		Service: "taskwell",
		Quiet:   true,
	})
	defer logger.Close()

	taskState, err := state.LoadTaskState(tasksFile)
	if err != nil {
		return err
	}
	ui, err := state.LoadUIState(configFile, taskState)
	if err != nil {
		return err
	}
	logger.Info("state loaded",
		"tasks", taskState.Tasks.Len(), "views", len(ui.Views))

	var changes <-chan string
	watcher, err := state.NewWatcher(tasksFile, configFile)
	if err != nil {
		// Running without change notifications beats not running.
		logger.Warn("file watching unavailable", "error", err)
	} else {
		changes = watcher.Changes()
		defer watcher.Close()
	}

	model := tui.NewModel(tui.Config{
		TaskState:  taskState,
		UI:         ui,
		TasksPath:  tasksFile,
		ConfigPath: configFile,
		Changes:    changes,
		Logger:     logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

// resolvePaths applies the default state file locations for flags left
// unset.
func resolvePaths() (string, string, error) {
	tasksFile := tasksPath
	configFile := configPath
	if tasksFile != "" && configFile != "" {
		return tasksFile, configFile, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", "", fmt.Errorf("determine config directory: %w (use --tasks and --config)", err)
	}
	dir := filepath.Join(base, "taskwell")
	if tasksFile == "" {
		tasksFile = filepath.Join(dir, "tasks.json")
	}
	if configFile == "" {
		configFile = filepath.Join(dir, "config.yaml")
	}
	return tasksFile, configFile, nil
}
