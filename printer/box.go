// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package printer

import "strings"

// boxReduce is the width of the outer borders with their padding.
const boxReduce = 4

// corners holds the left, junction and right piece of a horizontal border.
type corners [3]string

type boxStyle struct {
	top, middle, bottom corners
	fill, vertical      string
}

var (
	roundBox = boxStyle{
		top:      corners{"╭", "┬", "╮"},
		middle:   corners{"├", "┼", "┤"},
		bottom:   corners{"╰", "┴", "╯"},
		fill:     "─",
		vertical: "│",
	}
	asciiBox = boxStyle{
		top:      corners{"+", "+", "+"},
		middle:   corners{"+", "+", "+"},
		bottom:   corners{"+", "+", "+"},
		fill:     "-",
		vertical: "|",
	}
)

func boxFor(ascii bool) boxStyle {
	if ascii {
		return asciiBox
	}
	return roundBox
}

// separator goes between two cells of a data row.
func (bs boxStyle) separator() string {
	return " " + bs.vertical + " "
}

// hBorder builds a horizontal border such as ╭───┬───╮. Each column
// segment is width+2 fill characters for the padding on each side.
func (bs boxStyle) hBorder(widths []int, c corners) string {
	var b strings.Builder
	b.WriteString(c[0])
	for i, w := range widths {
		b.WriteString(strings.Repeat(bs.fill, w+2))
		if i < len(widths)-1 {
			b.WriteString(c[1])
		}
	}
	b.WriteString(c[2])
	return b.String()
}

// dataRow builds a row like │ Alice │ New York │ from padded cells.
func (bs boxStyle) dataRow(cells []string) string {
	return bs.vertical + " " + strings.Join(cells, bs.separator()) + " " + bs.vertical
}
