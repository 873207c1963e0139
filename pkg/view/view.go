// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package view implements named tag-query filters over the task
// store.
//
// # Description
//
// A View selects the subset of tasks matching a formula over tag
// literals in conjunctive normal form: the formula is a conjunction
// of clauses, each clause a disjunction of positive or negated tags.
// An empty formula matches every task. Views do not copy tasks; they
// filter the live store on every evaluation, so they always reflect
// the current state.
package view

import (
	"fmt"

	"github.com/taskwell/taskwell/pkg/ser"
	"github.com/taskwell/taskwell/pkg/tag"
	"github.com/taskwell/taskwell/pkg/task"
)

// Lit is a tag literal: a tag required to be present or, when
// negated, required to be absent.
type Lit struct {
	Tag tag.Tag
	Neg bool
}

// Pos returns a positive literal for the given tag.
func Pos(t tag.Tag) Lit { return Lit{Tag: t} }

// Neg returns a negated literal for the given tag.
func Neg(t tag.Tag) Lit { return Lit{Tag: t, Neg: true} }

// matches evaluates the literal against a task's tag set.
func (l Lit) matches(t *task.Task) bool {
	return t.HasTag(l.Tag) != l.Neg
}

// View is a named, formula-defined window onto a task collection.
type View struct {
	name  string
	tasks *task.Tasks
	// lits is the CNF formula: outer conjunction, inner disjunction.
	lits [][]Lit
}

// FromSer rebuilds a view from its serialized form, resolving tag
// references against the given registry. An unknown tag ID is a
// validation error.
func FromSer(v ser.View, templates *tag.Templates, tasks *task.Tasks) (*View, error) {
	lits := make([][]Lit, 0, len(v.Lits))
	for _, clause := range v.Lits {
		resolved := make([]Lit, 0, len(clause))
		for _, lit := range clause {
			serTag := lit.Pos
			negated := false
			if serTag == nil {
				serTag = lit.Neg
				negated = true
			}
			instantiated, ok := templates.Instantiate(tag.ID(serTag.ID))
			if !ok {
				return nil, fmt.Errorf("view %q references unknown tag ID %d", v.Name, serTag.ID)
			}
			resolved = append(resolved, Lit{Tag: instantiated, Neg: negated})
		}
		lits = append(lits, resolved)
	}

	return &View{name: v.Name, tasks: tasks, lits: lits}, nil
}

// ToSer converts the view into its serializable form.
func (v *View) ToSer() ser.View {
	lits := make([][]ser.TagLit, 0, len(v.lits))
	for _, clause := range v.lits {
		serClause := make([]ser.TagLit, 0, len(clause))
		for _, lit := range clause {
			serTag := lit.Tag.ToSer()
			if lit.Neg {
				serClause = append(serClause, ser.TagLit{Neg: &serTag})
			} else {
				serClause = append(serClause, ser.TagLit{Pos: &serTag})
			}
		}
		lits = append(lits, serClause)
	}
	return ser.View{Name: v.name, Lits: lits}
}

// Name returns the view's display name.
func (v *View) Name() string { return v.name }

// Matches reports whether the task satisfies the view's formula.
func (v *View) Matches(t *task.Task) bool {
	for _, clause := range v.lits {
		satisfied := false
		for _, lit := range clause {
			if lit.matches(t) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// Tasks returns the matching tasks in display order.
func (v *View) Tasks() []*task.Task {
	var out []*task.Task
	for _, t := range v.tasks.All() {
		if v.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of matching tasks.
func (v *View) Len() int {
	return len(v.Tasks())
}

// IsEmpty reports whether no task matches the view.
func (v *View) IsEmpty() bool {
	return v.Len() == 0
}

// Nth returns the nth matching task in display order.
func (v *View) Nth(idx int) (*task.Task, bool) {
	if idx < 0 {
		return nil, false
	}
	tasks := v.Tasks()
	if idx >= len(tasks) {
		return nil, false
	}
	return tasks[idx], true
}

// Position returns the position of the task with the given identity
// within the view. The UI uses it to re-resolve a selection after a
// mutation changed what the view shows.
func (v *View) Position(id task.ID) (int, bool) {
	for idx, t := range v.Tasks() {
		if t.ID() == id {
			return idx, true
		}
	}
	return 0, false
}

// RequiredTags returns the tags every matching task must carry: the
// positive literals of single-literal clauses. Tasks created inside a
// view get these tags so that they show up where they were created.
func (v *View) RequiredTags() []tag.Tag {
	var out []tag.Tag
	for _, clause := range v.lits {
		if len(clause) == 1 && !clause[0].Neg {
			out = append(out, clause[0].Tag)
		}
	}
	return out
}

// Builder constructs views programmatically.
type Builder struct {
	tasks *task.Tasks
	lits  [][]Lit
}

// NewBuilder creates a builder over the given task collection. With
// no clauses added, the built view matches every task.
func NewBuilder(tasks *task.Tasks) *Builder {
	return &Builder{tasks: tasks}
}

// And appends a clause requiring at least one of the given literals.
func (b *Builder) And(lits ...Lit) *Builder {
	b.lits = append(b.lits, lits)
	return b
}

// Build finalizes the view under the given name.
func (b *Builder) Build(name string) *View {
	return &View{name: name, tasks: b.tasks, lits: b.lits}
}
