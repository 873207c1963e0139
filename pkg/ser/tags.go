// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ser defines the serializable shapes of taskwell's persisted
// state.
//
// # Description
//
// The types in this package are plain data transfer objects with no
// behavior beyond validation. They decouple the on-disk representation
// (JSON for task state, YAML for UI configuration) from the in-memory
// domain types, which carry shared handles and an operation log that
// must not leak into files.
//
// Identifiers serialize as bare non-zero integers; zero is the "no
// identity" sentinel and is rejected by validation.
package ser

// Tag is a serializable reference to a tag template.
type Tag struct {
	ID uint64 `json:"id" yaml:"id" validate:"required"`
}

// Template is a serializable tag template: a unique ID paired with the
// user-visible tag name.
type Template struct {
	ID   uint64 `json:"id" yaml:"id" validate:"required"`
	Name string `json:"name" yaml:"name" validate:"required"`
}

// Templates is the list of all known tag templates.
type Templates []Template
