// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package columns

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/framegrace/texelcols/internal/textwidth"
)

// measureCell renders one cell into buf and records its display width on
// the cell and in the column's running maximum.
func measureCell(tb *Table, ln *Line, cl *Column, buf *Buffer) error {
	if err := tb.RenderCell(ln, cl, buf); err != nil {
		return errors.Wrapf(err, "render cell of column %q", cl.Header)
	}

	var width int
	if buf.Len() > 0 {
		data := buf.String()
		switch {
		case cl.IsCustomWrap():
			width = cl.ChunkSize(data)
		case tb.NoEncoding:
			width = textwidth.Raw(data)
		default:
			width = textwidth.Safe(data)
		}
	}
	if width < 0 {
		// broken multibyte data counts as empty
		width = 0
	}

	if ce := ln.Cell(cl.seq); ce != nil {
		ce.Width = width
	}
	if width > cl.Stats.Max {
		cl.Stats.Max = width
	}

	if cl.IsTree() {
		if tw := tb.measure(buf.TreeArt()); tw > cl.TreeArtWidth {
			cl.TreeArtWidth = tw
		}
	}
	return nil
}

// NewlineChunkSize is a ChunkSize for columns whose data is already split
// into rows by newlines: the width is that of the widest row.
func NewlineChunkSize(data string) int {
	widest := 0
	for _, chunk := range strings.Split(data, "\n") {
		w := textwidth.Safe(chunk)
		if w > widest {
			widest = w
		}
	}
	return widest
}
