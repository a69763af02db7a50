// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package columns

import "strings"

// Buffer is a reusable scratch area a Renderer writes one cell into. The
// tree-end mark records where tree art stops and cell data starts.
type Buffer struct {
	data    []byte
	treeEnd int
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{treeEnd: -1}
}

// Reset empties the buffer, keeping its storage.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.treeEnd = -1
}

// WriteString appends s.
func (b *Buffer) WriteString(s string) {
	b.data = append(b.data, s...)
}

// MarkTreeEnd records the current end of the buffer as the end of tree art.
func (b *Buffer) MarkTreeEnd() {
	b.treeEnd = len(b.data)
}

// Len is the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// String returns the buffer content.
func (b *Buffer) String() string { return string(b.data) }

// TreeArt returns the part of the buffer before the tree-end mark.
func (b *Buffer) TreeArt() string {
	if b.treeEnd < 0 {
		return ""
	}
	return string(b.data[:b.treeEnd])
}

// Data returns the part of the buffer after the tree-end mark.
func (b *Buffer) Data() string {
	if b.treeEnd < 0 {
		return string(b.data)
	}
	return string(b.data[b.treeEnd:])
}

// Renderer materialises the printable text of one cell into buf.
type Renderer interface {
	RenderCell(tb *Table, ln *Line, col *Column, buf *Buffer) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(tb *Table, ln *Line, col *Column, buf *Buffer) error

func (f RendererFunc) RenderCell(tb *Table, ln *Line, col *Column, buf *Buffer) error {
	return f(tb, ln, col, buf)
}

// RenderCell renders the cell of ln in column cl into buf with the table's
// renderer. buf is reset first.
func (tb *Table) RenderCell(ln *Line, cl *Column, buf *Buffer) error {
	buf.Reset()
	return tb.renderer().RenderCell(tb, ln, cl, buf)
}

// treeSymbols are the pieces of tree art, each two cells wide.
type treeSymbols struct {
	branch   string // child with following siblings
	right    string // last child
	vertical string // ancestor with following siblings
	empty    string
}

var (
	utf8Tree  = treeSymbols{branch: "├─", right: "└─", vertical: "│ ", empty: "  "}
	asciiTree = treeSymbols{branch: "|-", right: "`-", vertical: "| ", empty: "  "}
)

// TextRenderer copies cell data into the buffer, prefixed by tree art for
// tree columns.
type TextRenderer struct{}

func (TextRenderer) RenderCell(tb *Table, ln *Line, col *Column, buf *Buffer) error {
	if col.IsTree() {
		buf.WriteString(TreeArt(ln, tb.ASCII))
		buf.MarkTreeEnd()
	}
	if ce := ln.Cell(col.seq); ce != nil {
		buf.WriteString(ce.Data)
	}
	return nil
}

// TreeArt returns the indentation drawn in front of ln in a tree column.
func TreeArt(ln *Line, ascii bool) string {
	if ln == nil || ln.parent == nil {
		return ""
	}
	sym := utf8Tree
	if ascii {
		sym = asciiTree
	}

	var ancestors []*Line
	for p := ln.parent; p.parent != nil; p = p.parent {
		ancestors = append(ancestors, p)
	}

	var b strings.Builder
	for i := len(ancestors) - 1; i >= 0; i-- {
		if ancestors[i].IsLastChild() {
			b.WriteString(sym.empty)
		} else {
			b.WriteString(sym.vertical)
		}
	}
	if ln.IsLastChild() {
		b.WriteString(sym.right)
	} else {
		b.WriteString(sym.branch)
	}
	return b.String()
}
