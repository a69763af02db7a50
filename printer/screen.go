// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package printer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/framegrace/texelcols/columns"
)

var (
	borderStyle = tcell.StyleDefault.Dim(true)
	headerStyle = tcell.StyleDefault.Bold(true)
	dataStyle   = tcell.StyleDefault
)

// Draw lays out tb for the screen area right of x and draws it with its
// top-left corner at (x, y). Rows and cells outside the screen are clipped.
// It returns the number of rows the table needs. The table's terminal
// settings are restored afterwards.
func Draw(screen tcell.Screen, tb *columns.Table, opts Options, x, y int) (int, error) {
	sw, sh := screen.Size()
	isTerm, termWidth := tb.IsTerm, tb.TermWidth
	defer func() { tb.IsTerm, tb.TermWidth = isTerm, termWidth }()
	tb.IsTerm = true
	tb.TermWidth = max(sw-x, 0)

	lines, err := layout(tb, opts)
	if err != nil {
		return 0, err
	}

	for i, l := range lines {
		row := y + i
		if row >= sh {
			break
		}
		style := dataStyle
		switch l.kind {
		case kindBorder:
			style = borderStyle
		case kindHeader:
			style = headerStyle
		}

		col := x
		g := uniseg.NewGraphemes(l.text)
		for g.Next() {
			w := runewidth.StringWidth(g.Str())
			if w == 0 {
				continue
			}
			if col+w > sw {
				break
			}
			rs := g.Runes()
			screen.SetContent(col, row, rs[0], rs[1:], style)
			col += w
		}
	}
	return len(lines), nil
}
