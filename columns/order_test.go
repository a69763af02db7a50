// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func headers(cols []*Column) []string {
	out := make([]string, len(cols))
	for i, cl := range cols {
		out[i] = cl.Header
	}
	return out
}

func TestColumnOrder_SortAndRestore(t *testing.T) {
	tb := NewTable()
	for _, s := range []struct {
		name     string
		avg, dev float64
	}{
		{"a", 5, 1},
		{"b", 2, 0},
		{"c", 3, 3},
		{"d", 1, 1},
	} {
		cl := tb.AddColumn(s.name, 0, 0)
		cl.Stats.Avg = s.avg
		cl.Stats.Deviation = s.dev
	}

	o := newColumnOrder(tb)
	o.sortByDeviation()
	// a and c tie at 6 and keep their sequence order
	assert.Equal(t, []string{"b", "d", "a", "c"}, headers(o.cols))
	assert.Equal(t, []string{"a", "b", "c", "d"}, headers(tb.Columns))

	var seen []string
	o.backward(func(cl *Column) bool {
		seen = append(seen, cl.Header)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"c", "a"}, seen)

	o.restore()
	assert.Equal(t, []string{"a", "b", "c", "d"}, headers(o.cols))
}

func TestColumnOrder_SortIsIdempotent(t *testing.T) {
	tb := NewTable()
	x := tb.AddColumn("x", 0, 0)
	y := tb.AddColumn("y", 0, 0)
	x.Stats.Avg = 9
	y.Stats.Avg = 1

	o := newColumnOrder(tb)
	o.sortByDeviation()
	// a second call must not re-sort after stats changed
	x.Stats.Avg = 0
	o.sortByDeviation()
	assert.Equal(t, []string{"y", "x"}, headers(o.cols))
}

func TestColumnOrder_Forward(t *testing.T) {
	tb := NewTable()
	tb.AddColumn("a", 0, 0)
	tb.AddColumn("b", 0, 0)
	tb.AddColumn("c", 0, 0)

	var seen []string
	newColumnOrder(tb).forward(func(cl *Column) bool {
		seen = append(seen, cl.Header)
		return cl.Header != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}
