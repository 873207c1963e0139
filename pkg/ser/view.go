// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ser

// TagLit is a serializable tag literal: a tag required to be present
// (Pos) or required to be absent (Neg). Exactly one of the two fields
// is set; Validate rejects literals violating that.
type TagLit struct {
	Pos *Tag `json:"pos,omitempty" yaml:"pos,omitempty"`
	Neg *Tag `json:"neg,omitempty" yaml:"neg,omitempty"`
}

// View is a serializable task filter: a name plus a formula over tag
// literals in conjunctive normal form. The outer slice is a
// conjunction of clauses, each inner slice a disjunction of literals.
// An empty formula matches every task.
type View struct {
	Name string     `json:"name" yaml:"name" validate:"required"`
	Lits [][]TagLit `json:"lits,omitempty" yaml:"lits,omitempty"`
}
