// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package termsize finds out whether output goes to a terminal and how wide
// that terminal is.
package termsize

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultWidth is used when the width cannot be determined.
const DefaultWidth = 80

// Info describes the output device.
type Info struct {
	IsTerm bool
	Width  int
}

// Detect inspects f. The COLUMNS environment variable overrides the
// terminal's own idea of its width and is the only source for non-terminals.
func Detect(f *os.File) Info {
	info := Info{Width: DefaultWidth}
	if f != nil {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			info.IsTerm = true
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				info.Width = w
			}
		}
	}
	if w, ok := envWidth(); ok {
		info.Width = w
	}
	return info
}

func envWidth() (int, bool) {
	v := os.Getenv("COLUMNS")
	if v == "" {
		return 0, false
	}
	w, err := strconv.Atoi(v)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
