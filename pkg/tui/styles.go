// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the UI.
type Styles struct {
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Selected    lipgloss.Style
	Row         lipgloss.Style
	Complete    lipgloss.Style
	Status      lipgloss.Style
	Input       lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("57")),
		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Complete: lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Strikethrough(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Input: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")),
	}
}
