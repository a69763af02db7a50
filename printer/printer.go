// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package printer writes tables laid out by columns.Calculate as text or
// onto a tcell screen.
package printer

import (
	"bufio"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/framegrace/texelcols/columns"
	"github.com/framegrace/texelcols/internal/textwidth"
)

// Options control the output decoration.
type Options struct {
	NoHeadings bool
	Box        bool
}

type lineKind int

const (
	kindBorder lineKind = iota
	kindHeader
	kindData
)

type outputLine struct {
	kind lineKind
	text string
}

// Print lays out tb and writes one text line per output row to w.
func Print(w io.Writer, tb *columns.Table, opts Options) error {
	lines, err := layout(tb, opts)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		bw.WriteString(l.text)
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "write table")
}

// layout runs Calculate and formats every row. With a box the table's
// separator and reduce are swapped for the border geometry while the
// widths are computed.
func layout(tb *columns.Table, opts Options) ([]outputLine, error) {
	box := boxFor(tb.ASCII)
	if opts.Box {
		sep, reduce := tb.Separator, tb.TermReduce
		tb.Separator = box.separator()
		tb.TermReduce += boxReduce
		defer func() { tb.Separator, tb.TermReduce = sep, reduce }()
	}

	if err := columns.Calculate(tb); err != nil {
		return nil, err
	}
	cols := tb.VisibleColumns()
	if len(cols) == 0 {
		return nil, columns.ErrNoColumns
	}

	widths := make([]int, len(cols))
	for i, cl := range cols {
		widths[i] = cl.Width
	}

	join := func(cells []string) string {
		if opts.Box {
			return box.dataRow(cells)
		}
		return strings.TrimRight(strings.Join(cells, tb.ColumnSeparator()), " ")
	}

	var out []outputLine
	if opts.Box {
		out = append(out, outputLine{kindBorder, box.hBorder(widths, box.top)})
	}

	if !opts.NoHeadings {
		cells := make([]string, len(cols))
		for i, cl := range cols {
			cells[i] = fit(escape(tb, cl.Header), cl.Width, cl.IsRight())
		}
		out = append(out, outputLine{kindHeader, join(cells)})
		if opts.Box {
			out = append(out, outputLine{kindBorder, box.hBorder(widths, box.middle)})
		}
	}

	buf := columns.NewBuffer()
	err := columns.ForEachLine(tb, func(ln *columns.Line) error {
		cellRows := make([][]string, len(cols))
		height := 1
		for i, cl := range cols {
			if err := tb.RenderCell(ln, cl, buf); err != nil {
				return errors.Wrapf(err, "render cell of column %q", cl.Header)
			}
			cellRows[i] = formatCell(tb, cl, buf.TreeArt(), buf.Data())
			height = max(height, len(cellRows[i]))
		}
		for k := 0; k < height; k++ {
			cells := make([]string, len(cols))
			for i, cl := range cols {
				if k < len(cellRows[i]) {
					cells[i] = cellRows[i][k]
				} else {
					cells[i] = strings.Repeat(" ", cl.Width)
				}
			}
			out = append(out, outputLine{kindData, join(cells)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if opts.Box {
		out = append(out, outputLine{kindBorder, box.hBorder(widths, box.bottom)})
	}
	return out, nil
}

// formatCell returns the physical rows of one cell, each exactly cl.Width
// cells wide. Wrapped continuation rows are indented past the tree art.
// Columns carrying the trunc flag are always cut to a single row.
func formatCell(tb *columns.Table, cl *columns.Column, art, data string) []string {
	artWidth := runewidth.StringWidth(art)
	avail := max(cl.Width-artWidth, 0)

	var chunks []string
	switch {
	case cl.IsTrunc() || tb.NoWrap || !cl.IsWrap():
		chunks = []string{escape(tb, data)}
	case cl.IsCustomWrap():
		for _, ch := range strings.Split(data, "\n") {
			chunks = append(chunks, escape(tb, ch))
		}
	default:
		chunks = wrapText(escape(tb, data), avail)
	}

	rows := make([]string, len(chunks))
	indent := strings.Repeat(" ", artWidth)
	for i, ch := range chunks {
		prefix := art
		if i > 0 {
			prefix = indent
		}
		rows[i] = fit(prefix+ch, cl.Width, cl.IsRight())
	}
	return rows
}

func escape(tb *columns.Table, s string) string {
	if tb.NoEncoding {
		return s
	}
	return textwidth.Escape(s)
}

// fit truncates s to width cells and pads it on the aligned side.
func fit(s string, width int, right bool) string {
	s = textwidth.Truncate(s, width)
	if right {
		return textwidth.PadLeft(s, width)
	}
	return textwidth.PadRight(s, width)
}
