// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell/pkg/ser"
	"github.com/taskwell/taskwell/pkg/tag"
	"github.com/taskwell/taskwell/pkg/task"
)

// fixture builds a collection where tasks 1-4 carry tag patterns
// [], [complete], [urgent], [urgent complete].
func fixture(t *testing.T) (*task.Tasks, tag.Tag, tag.Tag) {
	t.Helper()

	templates := tag.NewTemplates()
	complete, ok := templates.InstantiateFromName(tag.CompleteTagName)
	require.True(t, ok)
	urgent := templates.Allocate("urgent")

	tasks := task.New(templates)
	tasks.Add("1", nil, nil)
	tasks.Add("2", []tag.Tag{complete}, nil)
	tasks.Add("3", []tag.Tag{urgent}, nil)
	tasks.Add("4", []tag.Tag{urgent, complete}, nil)
	return tasks, complete, urgent
}

func names(tasks []*task.Task) []string {
	var out []string
	for _, t := range tasks {
		out = append(out, t.Summary())
	}
	return out
}

func TestEmptyFormulaMatchesAll(t *testing.T) {
	tasks, _, _ := fixture(t)
	all := NewBuilder(tasks).Build("all")

	assert.Equal(t, []string{"1", "2", "3", "4"}, names(all.Tasks()))
	assert.Equal(t, 4, all.Len())
	assert.False(t, all.IsEmpty())
}

func TestPositiveLiteral(t *testing.T) {
	tasks, complete, _ := fixture(t)
	v := NewBuilder(tasks).And(Pos(complete)).Build("complete")

	assert.Equal(t, []string{"2", "4"}, names(v.Tasks()))
}

func TestNegatedLiteral(t *testing.T) {
	tasks, complete, _ := fixture(t)
	v := NewBuilder(tasks).And(Neg(complete)).Build("pending")

	assert.Equal(t, []string{"1", "3"}, names(v.Tasks()))
}

func TestConjunctionOfClauses(t *testing.T) {
	tasks, complete, urgent := fixture(t)
	v := NewBuilder(tasks).
		And(Pos(urgent)).
		And(Neg(complete)).
		Build("urgent && !complete")

	assert.Equal(t, []string{"3"}, names(v.Tasks()))
}

func TestDisjunctionWithinClause(t *testing.T) {
	tasks, complete, urgent := fixture(t)
	v := NewBuilder(tasks).And(Pos(urgent), Pos(complete)).Build("urgent || complete")

	assert.Equal(t, []string{"2", "3", "4"}, names(v.Tasks()))
}

func TestViewReflectsLiveMutations(t *testing.T) {
	tasks, complete, _ := fixture(t)
	v := NewBuilder(tasks).And(Pos(complete)).Build("complete")
	require.Equal(t, 2, v.Len())

	second, ok := tasks.Get(1)
	require.True(t, ok)
	tasks.Remove(second)
	assert.Equal(t, []string{"4"}, names(v.Tasks()))

	_, ok = tasks.Undo()
	require.True(t, ok)
	assert.Equal(t, []string{"2", "4"}, names(v.Tasks()))
}

func TestNthAndPosition(t *testing.T) {
	tasks, _, urgent := fixture(t)
	v := NewBuilder(tasks).And(Pos(urgent)).Build("urgent")

	third, ok := v.Nth(0)
	require.True(t, ok)
	assert.Equal(t, "3", third.Summary())

	pos, ok := v.Position(third.ID())
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	_, ok = v.Nth(2)
	assert.False(t, ok)
	_, ok = v.Position(task.ID(1))
	assert.False(t, ok)
}

func TestSerRoundTrip(t *testing.T) {
	tasks, complete, urgent := fixture(t)
	built := NewBuilder(tasks).
		And(Pos(urgent), Neg(complete)).
		Build("mixed")

	serView := built.ToSer()
	require.NoError(t, ser.Validate(&serView))

	restored, err := FromSer(serView, tasks.Templates(), tasks)
	require.NoError(t, err)
	assert.Equal(t, names(built.Tasks()), names(restored.Tasks()))
	assert.Equal(t, serView, restored.ToSer())
}

func TestFromSerRejectsUnknownTag(t *testing.T) {
	tasks, _, _ := fixture(t)
	serView := ser.View{
		Name: "broken",
		Lits: [][]ser.TagLit{{{Pos: &ser.Tag{ID: 4242}}}},
	}
	_, err := FromSer(serView, tasks.Templates(), tasks)
	assert.Error(t, err)
}
