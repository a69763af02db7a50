// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package columns holds the table model and the column width allocator.
// Calculate decides, for a target output width, how many cells every column
// gets and which columns are truncated or hidden. The package does no I/O;
// the printer package reads the widths it leaves behind.
package columns

import (
	"github.com/framegrace/texelcols/internal/textwidth"
)

// Flags are per-column capabilities.
type Flags uint16

const (
	FlagHidden      Flags = 1 << iota // column is not printed
	FlagTree                          // column carries tree art
	FlagRight                         // right-aligned
	FlagTrunc                         // may be truncated
	FlagWrap                          // may be wrapped onto continuation rows
	FlagStrictWidth                   // never enlarged to its minimum width
	FlagNoExtremes                    // takes part in deviation balancing
)

// DefaultSeparator is printed between adjacent visible columns.
const DefaultSeparator = " "

// WidthStats are recomputed from scratch on every Calculate pass.
type WidthStats struct {
	Min       int
	Max       int
	Avg       float64
	SqrSum    float64
	Deviation float64
}

// Cell is one column's content in a line.
type Cell struct {
	Data  string
	Width int // measured by Calculate
}

// Line is a row of cells, index-aligned with Table.Columns. Lines may form a
// tree; children are printed below their parent.
type Line struct {
	Cells    []Cell
	parent   *Line
	children []*Line
}

// Parent returns the parent line or nil for a root line.
func (ln *Line) Parent() *Line { return ln.parent }

// Children returns the child lines in insertion order.
func (ln *Line) Children() []*Line { return ln.children }

// Depth is the number of ancestors of the line.
func (ln *Line) Depth() int {
	d := 0
	for p := ln.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// IsLastChild reports whether ln is the last child of its parent.
func (ln *Line) IsLastChild() bool {
	if ln.parent == nil {
		return false
	}
	kids := ln.parent.children
	return kids[len(kids)-1] == ln
}

// Cell returns the cell at column index idx, or nil when out of range.
func (ln *Line) Cell(idx int) *Cell {
	if idx < 0 || idx >= len(ln.Cells) {
		return nil
	}
	return &ln.Cells[idx]
}

// SetData stores data in the cell at column index idx, growing the line if
// needed.
func (ln *Line) SetData(idx int, data string) {
	if idx < 0 {
		return
	}
	for len(ln.Cells) <= idx {
		ln.Cells = append(ln.Cells, Cell{})
	}
	ln.Cells[idx].Data = data
}

// AddChild attaches child below ln.
func (ln *Line) AddChild(child *Line) {
	if child == nil || child == ln {
		return
	}
	child.parent = ln
	ln.children = append(ln.children, child)
}

// Column describes one output column.
type Column struct {
	Header string

	// WidthHint below 1 is a fraction of the target width, 1 or more is an
	// absolute number of cells. Zero means no hint.
	WidthHint float64
	Flags     Flags

	// ChunkSize overrides measurement for wrapped columns whose content is
	// pre-split, see NewlineChunkSize.
	ChunkSize textwidth.Func

	// Results of Calculate.
	Width        int
	TreeArtWidth int
	Stats        WidthStats

	seq       int
	isGroups  bool
	noHeader  bool
	elided    bool // no header and no data, takes no space
	autoFlags Flags // set by the last pass, cleared by the next
}

// Seq is the column's position at insertion time.
func (c *Column) Seq() int { return c.seq }

func (c *Column) Has(f Flags) bool { return c.Flags&f != 0 }

// setAuto sets flags on behalf of Calculate.
func (c *Column) setAuto(f Flags) {
	f &^= c.Flags
	c.Flags |= f
	c.autoFlags |= f
}

// resetAuto drops the flags set by a previous pass.
func (c *Column) resetAuto() {
	c.Flags &^= c.autoFlags
	c.autoFlags = 0
}

func (c *Column) IsHidden() bool      { return c.Has(FlagHidden) }
func (c *Column) IsTree() bool        { return c.Has(FlagTree) }
func (c *Column) IsRight() bool       { return c.Has(FlagRight) }
func (c *Column) IsTrunc() bool       { return c.Has(FlagTrunc) }
func (c *Column) IsWrap() bool        { return c.Has(FlagWrap) }
func (c *Column) IsStrictWidth() bool { return c.Has(FlagStrictWidth) }
func (c *Column) IsNoExtremes() bool  { return c.Has(FlagNoExtremes) }

// IsElided reports whether the last pass found neither a header nor data
// for the column. Elided columns take no width and no separator.
func (c *Column) IsElided() bool { return c.elided }

// laidOut reports whether the column occupies space in the output.
func (c *Column) laidOut() bool { return !c.IsHidden() && !c.elided }

// IsCustomWrap reports whether the column wraps with its own chunk function.
func (c *Column) IsCustomWrap() bool { return c.IsWrap() && c.ChunkSize != nil }

// IsGroupChart reports whether the column carries the group chart in the
// last pass.
func (c *Column) IsGroupChart() bool { return c.isGroups }

// hasRelativeHint reports whether WidthHint is a fraction of the target.
func (c *Column) hasRelativeHint() bool { return c.WidthHint > 0 && c.WidthHint < 1 }

// Table is the unit Calculate works on. Columns and Lines are owned by the
// caller; Calculate only rewrites widths and the hidden/trunc flags.
type Table struct {
	Columns []*Column
	Lines   []*Line

	TermWidth  int
	TermReduce int  // subtracted from TermWidth
	IsTerm     bool // output goes to an interactive terminal
	MaxOut     bool // fill the whole target width
	NoWrap     bool // never use more than one row per line
	NoEncoding bool // measure raw text, do not escape
	ASCII      bool // ASCII tree art

	// Separator is printed between columns. Empty means DefaultSeparator.
	Separator string

	// GroupSetSize enables the group chart next to the first tree column.
	GroupSetSize int

	Renderer Renderer
	Observer Observer
}

// NewTable returns an empty table with the default renderer.
func NewTable() *Table {
	return &Table{Separator: DefaultSeparator}
}

// AddColumn appends a column and returns it.
func (tb *Table) AddColumn(header string, hint float64, flags Flags) *Column {
	cl := &Column{
		Header:    header,
		WidthHint: hint,
		Flags:     flags,
		seq:       len(tb.Columns),
	}
	tb.Columns = append(tb.Columns, cl)
	return cl
}

// NewLine appends a line. A non-nil parent makes it a child of that line.
func (tb *Table) NewLine(parent *Line) *Line {
	ln := &Line{Cells: make([]Cell, len(tb.Columns))}
	if parent != nil {
		parent.AddChild(ln)
	}
	tb.Lines = append(tb.Lines, ln)
	return ln
}

// IsTree reports whether any visible column renders tree art.
func (tb *Table) IsTree() bool {
	for _, cl := range tb.Columns {
		if cl.IsTree() && !cl.IsHidden() {
			return true
		}
	}
	return false
}

// HasGroups reports whether the group chart is enabled.
func (tb *Table) HasGroups() bool { return tb.GroupSetSize > 0 }

// Target is the width Calculate tries to fit.
func (tb *Table) Target() int {
	w := tb.TermWidth - tb.TermReduce
	if w < 0 {
		return 0
	}
	return w
}

// SeparatorWidth is the display width of the column separator.
func (tb *Table) SeparatorWidth() int {
	return tb.measure(tb.ColumnSeparator())
}

func (tb *Table) ColumnSeparator() string {
	if tb.Separator == "" {
		return DefaultSeparator
	}
	return tb.Separator
}

// VisibleColumns returns the columns that are neither hidden nor elided, in
// sequence order.
func (tb *Table) VisibleColumns() []*Column {
	var out []*Column
	for _, cl := range tb.Columns {
		if cl.laidOut() {
			out = append(out, cl)
		}
	}
	return out
}

// IsLastColumn reports whether no visible column follows cl.
func (tb *Table) IsLastColumn(cl *Column) bool {
	for i := cl.seq + 1; i < len(tb.Columns); i++ {
		if tb.Columns[i].laidOut() {
			return false
		}
	}
	return true
}

// lastVisibleColumn returns the last visible column in sequence order.
func (tb *Table) lastVisibleColumn() *Column {
	for i := len(tb.Columns) - 1; i >= 0; i-- {
		if tb.Columns[i].laidOut() {
			return tb.Columns[i]
		}
	}
	return nil
}

// measure returns the width of s according to the table's encoding mode.
func (tb *Table) measure(s string) int {
	var w int
	if tb.NoEncoding {
		w = textwidth.Raw(s)
	} else {
		w = textwidth.Safe(s)
	}
	if w == textwidth.Unmeasurable {
		return 0
	}
	return w
}

func (tb *Table) renderer() Renderer {
	if tb.Renderer == nil {
		return TextRenderer{}
	}
	return tb.Renderer
}
