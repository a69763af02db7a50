// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tabledef loads table definitions from YAML, JSON or TOML files
// and from delimited text, and turns them into columns.Table values.
package tabledef

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/framegrace/texelcols/columns"
)

var (
	ErrUnknownFormat = errors.New("unknown table definition format")
	ErrUnknownFlag   = errors.New("unknown column flag")
	ErrUnknownParent = errors.New("unknown parent row")
	ErrParentCycle   = errors.New("row is its own ancestor")
)

// Format is a definition file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ColumnDef describes one column. Align is "left", "right" or empty, in
// which case numeric columns are right-aligned.
type ColumnDef struct {
	Name  string   `json:"name" yaml:"name" toml:"name"`
	Hint  float64  `json:"hint,omitempty" yaml:"hint,omitempty" toml:"hint,omitempty"`
	Flags []string `json:"flags,omitempty" yaml:"flags,omitempty" toml:"flags,omitempty"`
	Align string   `json:"align,omitempty" yaml:"align,omitempty" toml:"align,omitempty"`
}

// RowDef is one line. Parent refers to the ID of an earlier or later row.
type RowDef struct {
	ID     string   `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Parent string   `json:"parent,omitempty" yaml:"parent,omitempty" toml:"parent,omitempty"`
	Cells  []string `json:"cells" yaml:"cells" toml:"cells"`
}

// Definition is a complete table.
type Definition struct {
	Columns []ColumnDef `json:"columns" yaml:"columns" toml:"columns"`
	Rows    []RowDef    `json:"rows" yaml:"rows" toml:"rows"`
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%s", path)
}

// Load reads the definition file at path.
func Load(path string) (*Definition, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open table definition")
	}
	defer f.Close()

	def, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return def, nil
}

// Decode reads a definition in the given format from r.
func Decode(r io.Reader, format Format) (*Definition, error) {
	var def Definition
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&def)
		if err == io.EOF {
			err = nil
		}
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&def)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&def)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", format)
	}
	return &def, nil
}

var flagNames = map[string]columns.Flags{
	"hidden":      columns.FlagHidden,
	"tree":        columns.FlagTree,
	"right":       columns.FlagRight,
	"trunc":       columns.FlagTrunc,
	"wrap":        columns.FlagWrap,
	"strictwidth": columns.FlagStrictWidth,
	"noextremes":  columns.FlagNoExtremes,
	"customwrap":  columns.FlagWrap,
}

// customWrap marks a wrapped column whose cells are pre-split at newlines.
const customWrap = "customwrap"

func hasCustomWrap(names []string) bool {
	for _, name := range names {
		if strings.ToLower(strings.TrimSpace(name)) == customWrap {
			return true
		}
	}
	return false
}

// ParseFlags turns flag names into column flags. Names are case-insensitive.
func ParseFlags(names []string) (columns.Flags, error) {
	var flags columns.Flags
	for _, name := range names {
		f, ok := flagNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, errors.Wrapf(ErrUnknownFlag, "%q", name)
		}
		flags |= f
	}
	return flags, nil
}

// Build creates a table with the definition's columns and lines. Rows with
// a parent become its children; numeric columns without an explicit
// alignment are right-aligned.
func (d *Definition) Build() (*columns.Table, error) {
	tb := columns.NewTable()
	for i, cd := range d.Columns {
		flags, err := ParseFlags(cd.Flags)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", cd.Name)
		}
		switch strings.ToLower(cd.Align) {
		case "":
			if Classify(d.columnValues(i)) == TypeNumber {
				flags |= columns.FlagRight
			}
		case "left":
			flags &^= columns.FlagRight
		case "right":
			flags |= columns.FlagRight
		default:
			return nil, errors.Wrapf(ErrUnknownFlag, "column %q: align %q", cd.Name, cd.Align)
		}
		cl := tb.AddColumn(cd.Name, cd.Hint, flags)
		if hasCustomWrap(cd.Flags) {
			cl.ChunkSize = columns.NewlineChunkSize
		}
	}

	lines := make([]*columns.Line, len(d.Rows))
	byID := make(map[string]*columns.Line)
	for i, rd := range d.Rows {
		ln := tb.NewLine(nil)
		for ci, data := range rd.Cells {
			ln.SetData(ci, data)
		}
		lines[i] = ln
		if rd.ID != "" {
			byID[rd.ID] = ln
		}
	}

	for i, rd := range d.Rows {
		if rd.Parent == "" {
			continue
		}
		parent, ok := byID[rd.Parent]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownParent, "row %d: %q", i, rd.Parent)
		}
		for p := parent; p != nil; p = p.Parent() {
			if p == lines[i] {
				return nil, errors.Wrapf(ErrParentCycle, "row %d", i)
			}
		}
		parent.AddChild(lines[i])
	}
	return tb, nil
}

func (d *Definition) columnValues(idx int) []string {
	values := make([]string, 0, len(d.Rows))
	for _, rd := range d.Rows {
		if idx < len(rd.Cells) {
			values = append(values, rd.Cells[idx])
		}
	}
	return values
}
