// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package columns

import "sort"

// columnOrder is a permutation of Table.Columns used to visit columns in an
// order other than their sequence. Table.Columns itself is never reordered.
type columnOrder struct {
	cols   []*Column
	sorted bool
}

func newColumnOrder(tb *Table) *columnOrder {
	cols := make([]*Column, len(tb.Columns))
	copy(cols, tb.Columns)
	return &columnOrder{cols: cols}
}

// extremeness is the value deviation sorting ranks columns by.
func extremeness(cl *Column) float64 {
	return cl.Stats.Avg + cl.Stats.Deviation
}

// sortByDeviation orders columns by ascending mean plus deviation, so that a
// backward walk meets the most extreme column first. Ties keep sequence
// order.
func (o *columnOrder) sortByDeviation() {
	if o.sorted {
		return
	}
	sort.SliceStable(o.cols, func(i, j int) bool {
		return extremeness(o.cols[i]) < extremeness(o.cols[j])
	})
	o.sorted = true
}

// restore puts the columns back into sequence order.
func (o *columnOrder) restore() {
	if !o.sorted {
		return
	}
	sort.SliceStable(o.cols, func(i, j int) bool {
		return o.cols[i].seq < o.cols[j].seq
	})
	o.sorted = false
}

// backward visits the columns from last to first until fn returns false.
func (o *columnOrder) backward(fn func(cl *Column) bool) {
	for i := len(o.cols) - 1; i >= 0; i-- {
		if !fn(o.cols[i]) {
			return
		}
	}
}

// forward visits the columns from first to last until fn returns false.
func (o *columnOrder) forward(fn func(cl *Column) bool) {
	for _, cl := range o.cols {
		if !fn(cl) {
			return
		}
	}
}
