// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package columns

// WalkTree visits every line depth-first, parents before children, roots in
// table order. The walk stops at the first error.
func WalkTree(tb *Table, fn func(ln *Line) error) error {
	for _, ln := range tb.Lines {
		if ln.parent != nil {
			continue
		}
		if err := walkLine(ln, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkLine(ln *Line, fn func(ln *Line) error) error {
	if err := fn(ln); err != nil {
		return err
	}
	for _, child := range ln.children {
		if err := walkLine(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// ForEachLine visits lines in print order: tree order for tree tables,
// insertion order otherwise.
func ForEachLine(tb *Table, fn func(ln *Line) error) error {
	if tb.IsTree() {
		return WalkTree(tb, fn)
	}
	for _, ln := range tb.Lines {
		if err := fn(ln); err != nil {
			return err
		}
	}
	return nil
}
