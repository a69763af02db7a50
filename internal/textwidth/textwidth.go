// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package textwidth measures the display width of cell text. Two flavours
// exist: the raw width of the text as the terminal would draw it, and the
// "safe" width of the text after non-printable bytes have been replaced by
// \xNN escapes.
package textwidth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Unmeasurable is returned when a string cannot be measured, for example
// because it contains a broken multibyte sequence.
const Unmeasurable = -1

// escapeWidth is the width of a single escaped byte ("\xNN").
const escapeWidth = 4

// Func measures the display width of s.
type Func func(s string) int

// Raw returns the display width of s without any escaping. Broken UTF-8
// yields Unmeasurable.
func Raw(s string) int {
	if !utf8.ValidString(s) {
		return Unmeasurable
	}
	return runewidth.StringWidth(s)
}

// Safe returns the width s occupies once passed through Escape. Printable
// clusters measure the same as in Raw. It never returns Unmeasurable: broken
// bytes are escaped like control bytes.
func Safe(s string) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if needsEscape(cluster) {
			width += escapeWidth * len(cluster)
			continue
		}
		width += runewidth.StringWidth(cluster)
	}
	return width
}

// Escape replaces every non-printable or broken byte of s by its \xNN form.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if !needsEscape(cluster) {
			b.WriteString(cluster)
			continue
		}
		for i := 0; i < len(cluster); i++ {
			fmt.Fprintf(&b, `\x%02x`, cluster[i])
		}
	}
	return b.String()
}

// needsEscape reports whether a grapheme cluster starts with something the
// terminal cannot print as is.
func needsEscape(cluster string) bool {
	r, size := utf8.DecodeRuneInString(cluster)
	if r == utf8.RuneError && size <= 1 {
		return true
	}
	return !unicode.IsPrint(r) && !unicode.Is(unicode.Zs, r)
}

// Truncate shortens s to at most width display cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// PadRight pads s with spaces to width display cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft pads s with leading spaces to width display cells.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}
