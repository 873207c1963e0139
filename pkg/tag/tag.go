// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package tag manages tag templates and the tags instantiated from
// them.
//
// # Description
//
// A Template is the single source of truth for a tag's identity and
// name; a Tag is a lightweight reference to a template. All tasks
// share one Templates registry, so two tags instantiated from the
// same template always compare equal.
//
// # Thread Safety
//
// The registry is read-mostly and never mutated while the task core
// runs; it is not safe for concurrent mutation.
package tag

import (
	"fmt"
	"sort"

	"github.com/taskwell/taskwell/pkg/ser"
)

// CompleteTagName is the name of the well-known tag marking a task as
// completed. A fresh registry always provides it.
const CompleteTagName = "complete"

// ID uniquely identifies a tag template. Zero is reserved as "no tag".
type ID uint64

// Template describes a tag that can be applied to tasks.
type Template struct {
	id   ID
	name string
}

// ID returns the template's unique identifier.
func (t *Template) ID() ID { return t.id }

// Name returns the template's user-visible name.
func (t *Template) Name() string { return t.name }

// Tag is an instance of a template as applied to a task. Tags are
// value types; equality follows the underlying template.
type Tag struct {
	template *Template
}

// ID returns the identifier of the tag's template.
func (t Tag) ID() ID { return t.template.id }

// Name returns the name of the tag's template.
func (t Tag) Name() string { return t.template.name }

// ToSer converts the tag into its serializable form.
func (t Tag) ToSer() ser.Tag {
	return ser.Tag{ID: uint64(t.template.id)}
}

// Templates is the registry of all known tag templates.
type Templates struct {
	// templates holds all templates ordered by ID.
	templates []*Template
	// nextID is the ID handed out for the next new template.
	nextID ID
}

// NewTemplates creates a registry containing only the well-known
// "complete" template.
func NewTemplates() *Templates {
	ts := &Templates{nextID: 1}
	ts.Allocate(CompleteTagName)
	return ts
}

// FromSer builds a registry from its serialized form. Duplicate IDs
// and duplicate names are rejected; the registry is not partially
// constructed on failure.
func FromSer(templates ser.Templates) (*Templates, error) {
	ts := &Templates{nextID: 1}
	seenIDs := make(map[ID]struct{}, len(templates))
	seenNames := make(map[string]struct{}, len(templates))

	for _, template := range templates {
		id := ID(template.ID)
		if _, ok := seenIDs[id]; ok {
			return nil, fmt.Errorf("duplicate tag template ID %d", id)
		}
		if _, ok := seenNames[template.Name]; ok {
			return nil, fmt.Errorf("duplicate tag template name %q", template.Name)
		}
		seenIDs[id] = struct{}{}
		seenNames[template.Name] = struct{}{}

		ts.templates = append(ts.templates, &Template{id: id, name: template.Name})
		if id >= ts.nextID {
			ts.nextID = id + 1
		}
	}

	sort.Slice(ts.templates, func(i, j int) bool {
		return ts.templates[i].id < ts.templates[j].id
	})
	return ts, nil
}

// ToSer converts the registry into its serializable form, ordered by
// ID.
func (ts *Templates) ToSer() ser.Templates {
	templates := make(ser.Templates, 0, len(ts.templates))
	for _, template := range ts.templates {
		templates = append(templates, ser.Template{
			ID:   uint64(template.id),
			Name: template.name,
		})
	}
	return templates
}

// Allocate creates a template with a fresh ID for the given name and
// returns a tag referencing it. Allocating an existing name returns a
// tag for the existing template instead.
func (ts *Templates) Allocate(name string) Tag {
	if tag, ok := ts.InstantiateFromName(name); ok {
		return tag
	}

	template := &Template{id: ts.nextID, name: name}
	ts.nextID++
	ts.templates = append(ts.templates, template)
	return Tag{template: template}
}

// Instantiate creates a tag referencing the template with the given
// ID. The second return value reports whether such a template exists.
func (ts *Templates) Instantiate(id ID) (Tag, bool) {
	template, ok := ts.find(id)
	if !ok {
		return Tag{}, false
	}
	return Tag{template: template}, true
}

// InstantiateFromName creates a tag referencing the template with the
// given name.
func (ts *Templates) InstantiateFromName(name string) (Tag, bool) {
	for _, template := range ts.templates {
		if template.name == name {
			return Tag{template: template}, true
		}
	}
	return Tag{}, false
}

// All returns the templates ordered by ID. The returned slice must
// not be modified.
func (ts *Templates) All() []*Template {
	return ts.templates
}

func (ts *Templates) find(id ID) (*Template, bool) {
	idx := sort.Search(len(ts.templates), func(i int) bool {
		return ts.templates[i].id >= id
	})
	if idx < len(ts.templates) && ts.templates[idx].id == id {
		return ts.templates[idx], true
	}
	return nil, false
}
