// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package printer

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
)

// wrapText breaks s into rows of at most width cells, at spaces where
// possible and inside words otherwise.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	if runewidth.StringWidth(s) <= width && !strings.Contains(s, "\n") {
		return []string{s}
	}

	var rows []string
	for _, line := range strings.Split(wordwrap.WrapString(s, uint(width)), "\n") {
		if runewidth.StringWidth(line) > width {
			line = ansi.Hardwrap(line, width, true)
		}
		rows = append(rows, strings.Split(line, "\n")...)
	}
	return rows
}
