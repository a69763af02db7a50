// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/table.go
// Summary: Table layout settings and their application to a table.

package config

import "github.com/framegrace/texelcols/columns"

// TableSettings mirror the table section.
type TableSettings struct {
	MaxOut     bool
	NoWrap     bool
	NoEncoding bool
	ASCII      bool
	NoHeadings bool
	Box        bool
	Separator  string
	Width      int // 0 means detect
}

// Table reads the table section, falling back to the defaults for missing
// or mistyped keys.
func (c Config) Table() TableSettings {
	s := c.Section(TableSection)
	return TableSettings{
		MaxOut:     s.Bool("maxout", false),
		NoWrap:     s.Bool("nowrap", false),
		NoEncoding: s.Bool("noencoding", false),
		ASCII:      s.Bool("ascii", false),
		NoHeadings: s.Bool("noheadings", false),
		Box:        s.Bool("box", false),
		Separator:  s.String("separator", columns.DefaultSeparator),
		Width:      s.Int("width", 0),
	}
}

// Apply copies the layout settings onto tb. A positive Width replaces the
// detected terminal width.
func (ts TableSettings) Apply(tb *columns.Table) {
	tb.MaxOut = ts.MaxOut
	tb.NoWrap = ts.NoWrap
	tb.NoEncoding = ts.NoEncoding
	tb.ASCII = ts.ASCII
	if ts.Separator != "" {
		tb.Separator = ts.Separator
	}
	if ts.Width > 0 {
		tb.TermWidth = ts.Width
	}
}

// ApplyTable applies the table section of cfg to tb and returns the
// settings, which also carry the printer options.
func ApplyTable(cfg Config, tb *columns.Table) TableSettings {
	ts := cfg.Table()
	ts.Apply(tb)
	return ts
}
