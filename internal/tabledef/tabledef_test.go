// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tabledef

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texelcols/columns"
)

const yamlDef = `
columns:
  - name: NAME
    flags: [tree]
  - name: SIZE
  - name: MOUNT
    hint: 0.3
    flags: [trunc, noextremes]
rows:
  - id: sda
    cells: [sda, "100", ""]
  - id: sda1
    parent: sda
    cells: [sda1, "60", /boot]
  - parent: sda
    cells: [sda2, "40", /]
`

const jsonDef = `{
  "columns": [
    {"name": "NAME", "flags": ["tree"]},
    {"name": "SIZE"},
    {"name": "MOUNT", "hint": 0.3, "flags": ["trunc", "noextremes"]}
  ],
  "rows": [
    {"id": "sda", "cells": ["sda", "100", ""]},
    {"id": "sda1", "parent": "sda", "cells": ["sda1", "60", "/boot"]},
    {"parent": "sda", "cells": ["sda2", "40", "/"]}
  ]
}`

const tomlDef = `
[[columns]]
name = "NAME"
flags = ["tree"]

[[columns]]
name = "SIZE"

[[columns]]
name = "MOUNT"
hint = 0.3
flags = ["trunc", "noextremes"]

[[rows]]
id = "sda"
cells = ["sda", "100", ""]

[[rows]]
id = "sda1"
parent = "sda"
cells = ["sda1", "60", "/boot"]

[[rows]]
parent = "sda"
cells = ["sda2", "40", "/"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AllFormats(t *testing.T) {
	var first *Definition
	for name, content := range map[string]string{
		"disks.yaml": yamlDef,
		"disks.json": jsonDef,
		"disks.toml": tomlDef,
	} {
		def, err := Load(writeFile(t, name, content))
		require.NoError(t, err, name)
		require.Len(t, def.Columns, 3, name)
		require.Len(t, def.Rows, 3, name)
		if first == nil {
			first = def
			continue
		}
		if diff := cmp.Diff(first, def); diff != "" {
			t.Errorf("%s differs (-first +got):\n%s", name, diff)
		}
	}
	assert.Equal(t, 0.3, first.Columns[2].Hint)
	assert.Equal(t, "sda", first.Rows[1].Parent)
}

func TestLoad_UnknownFormat(t *testing.T) {
	_, err := Load(writeFile(t, "disks.ini", "x=1"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decode(strings.NewReader(""), Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad_DecodeError(t *testing.T) {
	path := writeFile(t, "broken.json", "{")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFlags(t *testing.T) {
	flags, err := ParseFlags([]string{"Tree", " wrap ", "strictwidth"})
	require.NoError(t, err)
	assert.Equal(t, columns.FlagTree|columns.FlagWrap|columns.FlagStrictWidth, flags)

	_, err = ParseFlags([]string{"bold"})
	assert.ErrorIs(t, err, ErrUnknownFlag)
	assert.Contains(t, err.Error(), `"bold"`)
}

func TestBuild(t *testing.T) {
	def, err := Decode(strings.NewReader(yamlDef), FormatYAML)
	require.NoError(t, err)
	tb, err := def.Build()
	require.NoError(t, err)

	require.Len(t, tb.Columns, 3)
	assert.True(t, tb.Columns[0].IsTree())
	assert.True(t, tb.Columns[1].IsRight(), "numeric column is right-aligned")
	assert.True(t, tb.Columns[2].IsTrunc())
	assert.True(t, tb.Columns[2].IsNoExtremes())
	assert.Equal(t, 0.3, tb.Columns[2].WidthHint)

	require.Len(t, tb.Lines, 3)
	root := tb.Lines[0]
	assert.Nil(t, root.Parent())
	assert.Equal(t, []*columns.Line{tb.Lines[1], tb.Lines[2]}, root.Children())
	assert.Equal(t, "/boot", tb.Lines[1].Cells[2].Data)
}

func TestBuild_Alignment(t *testing.T) {
	def := &Definition{
		Columns: []ColumnDef{
			{Name: "N", Align: "left"},
			{Name: "T", Align: "right"},
			{Name: "X", Align: "middle"},
		},
		Rows: []RowDef{{Cells: []string{"1", "a", "b"}}},
	}
	_, err := def.Build()
	assert.ErrorIs(t, err, ErrUnknownFlag)

	def.Columns = def.Columns[:2]
	tb, err := def.Build()
	require.NoError(t, err)
	assert.False(t, tb.Columns[0].IsRight())
	assert.True(t, tb.Columns[1].IsRight())
}

func TestBuild_ParentErrors(t *testing.T) {
	def := &Definition{
		Columns: []ColumnDef{{Name: "N"}},
		Rows:    []RowDef{{ID: "a", Parent: "zz", Cells: []string{"a"}}},
	}
	_, err := def.Build()
	assert.ErrorIs(t, err, ErrUnknownParent)

	def.Rows = []RowDef{
		{ID: "a", Parent: "b", Cells: []string{"a"}},
		{ID: "b", Parent: "a", Cells: []string{"b"}},
	}
	_, err = def.Build()
	assert.ErrorIs(t, err, ErrParentCycle)
}

func TestBuild_ParentDefinedLater(t *testing.T) {
	def := &Definition{
		Columns: []ColumnDef{{Name: "N", Flags: []string{"tree"}}},
		Rows: []RowDef{
			{Parent: "root", Cells: []string{"child"}},
			{ID: "root", Cells: []string{"root"}},
		},
	}
	tb, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, tb.Lines[1], tb.Lines[0].Parent())
}

func TestBuild_BadFlag(t *testing.T) {
	def := &Definition{Columns: []ColumnDef{{Name: "N", Flags: []string{"sparkly"}}}}
	_, err := def.Build()
	assert.ErrorIs(t, err, ErrUnknownFlag)
	assert.Contains(t, err.Error(), `column "N"`)
}

func TestBuild_CustomWrap(t *testing.T) {
	def, err := Decode(strings.NewReader(`
columns:
  - name: NOTES
    flags: [CustomWrap]
  - name: PLAIN
    flags: [wrap]
rows:
  - cells: ["one\nthree", "a b"]
`), FormatYAML)
	require.NoError(t, err)
	tb, err := def.Build()
	require.NoError(t, err)

	notes, plain := tb.Columns[0], tb.Columns[1]
	assert.True(t, notes.IsCustomWrap())
	assert.False(t, plain.IsCustomWrap())
	assert.True(t, plain.IsWrap())

	require.NoError(t, columns.Calculate(tb))
	assert.Equal(t, 5, notes.Stats.Max)
}
