// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// --- Global Command Variables ---
var (
	tasksPath  string
	configPath string
	logDir     string
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "taskwell",
		Short: "A terminal task manager with unlimited-feeling undo",
		Long: `Taskwell is a keyboard-driven terminal task manager. Tasks are
organized by tags, filtered through configurable views shown as tabs,
and every change can be undone and redone.`,
		RunE:          runUI, // Defined in cmd_run.go
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the taskwell version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("taskwell %s\n", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&tasksPath, "tasks", "",
		"path to the task data file (default: <user config dir>/taskwell/tasks.json)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the UI configuration file (default: <user config dir>/taskwell/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "",
		"directory for log files (default: no file logging)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(versionCmd)
}
