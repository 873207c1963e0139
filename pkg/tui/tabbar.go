// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tabBar renders the view names as a row of tabs and tracks which one
// is active.
type tabBar struct {
	names    []string
	selected int
}

func newTabBar(names []string, selected int) tabBar {
	bar := tabBar{names: names}
	bar.selectTab(selected)
	return bar
}

// selectTab activates the tab at the given index, clamped to the valid
// range. It reports whether the active tab changed.
func (b *tabBar) selectTab(idx int) bool {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(b.names) {
		idx = len(b.names) - 1
	}
	if idx == b.selected {
		return false
	}
	b.selected = idx
	return true
}

// next cycles to the following tab, wrapping around at the end.
func (b *tabBar) next() bool {
	if len(b.names) < 2 {
		return false
	}
	b.selected = (b.selected + 1) % len(b.names)
	return true
}

// prev cycles to the preceding tab, wrapping around at the start.
func (b *tabBar) prev() bool {
	if len(b.names) < 2 {
		return false
	}
	b.selected = (b.selected + len(b.names) - 1) % len(b.names)
	return true
}

func (b *tabBar) render(styles Styles, width int) string {
	tabs := make([]string, 0, len(b.names))
	for idx, name := range b.names {
		style := styles.TabInactive
		if idx == b.selected {
			style = styles.TabActive
		}
		tabs = append(tabs, style.Render(name))
	}
	row := strings.Join(tabs, " ")
	if width > 0 {
		row = lipgloss.NewStyle().MaxWidth(width).Render(row)
	}
	return row
}
