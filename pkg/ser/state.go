// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ser

// UIConfig is the serializable UI configuration. It lives in its own
// YAML file next to the task state so that users can edit views and
// key behavior without touching their data.
type UIConfig struct {
	// ToggleTag is the tag toggled by the user's "toggle" action,
	// typically the one marking a task as complete.
	ToggleTag *Tag `yaml:"toggle_tag,omitempty"`

	// Views are the task filters shown as tabs, each with an
	// optionally remembered selection index.
	Views []ViewState `yaml:"views,omitempty" validate:"omitempty,dive"`

	// Selected is the index of the view that was active when the
	// configuration was saved.
	Selected *int `yaml:"selected,omitempty"`
}

// ViewState pairs a view with the selection it had when saved.
type ViewState struct {
	View     View `yaml:"view" validate:"required"`
	Selected *int `yaml:"selected,omitempty"`
}
