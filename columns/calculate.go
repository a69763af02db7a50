// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package columns

import "github.com/pkg/errors"

// ErrNoColumns is returned by printers for tables without visible columns.
var ErrNoColumns = errors.New("table has no visible columns")

// calc carries the running totals of one Calculate pass.
type calc struct {
	tb     *Table
	order  *columnOrder
	target int
	sep    int
	width  int // sum of visible widths plus separators
	minSum int // same with minimum widths
}

// Calculate assigns a width to every visible column of tb. For non-terminal
// output every column gets its natural width. For terminals the widths are
// balanced to fit Target() as closely as the table policy allows. The only
// error source is the renderer; after an error the widths are undefined.
//
// Calculate must not run concurrently with itself or with changes to tb.
func Calculate(tb *Table) error {
	c := &calc{
		tb:     tb,
		target: tb.Target(),
		sep:    tb.SeparatorWidth(),
	}
	for i, cl := range tb.Columns {
		cl.seq = i
		cl.isGroups = false
		cl.elided = false
		cl.resetAuto()
	}
	c.order = newColumnOrder(tb)
	defer c.order.restore()

	tb.emit(Event{Phase: PhaseStart, Target: c.target, Msg: "calculate"})

	if err := c.baseGeometry(); err != nil {
		return err
	}
	if !tb.IsTerm {
		tb.emit(Event{Phase: PhaseDone, Width: c.width, Target: c.target, Msg: "non-terminal output"})
		return nil
	}

	c.guardMinimum()
	eligible := c.collectStats()
	if c.width > c.target && eligible > 0 {
		c.shrinkExtremes()
	}
	if c.width < c.target {
		c.grow(eligible > 0)
	}
	c.truncate()

	c.order.restore()
	tb.emit(Event{Phase: PhaseRestore, Width: c.width, Target: c.target})

	if tb.NoWrap && c.width > c.target {
		c.forceFit()
	}
	tb.emit(Event{Phase: PhaseDone, Width: c.width, Target: c.target, Msg: "final width"})
	return nil
}

// sepAfter is the separator width following cl.
func (c *calc) sepAfter(cl *Column) int {
	if c.tb.IsLastColumn(cl) {
		return 0
	}
	return c.sep
}

func (c *calc) adjusted(phase Phase, cl *Column, delta int, msg string) {
	c.tb.emit(Event{Phase: phase, Width: c.width, Target: c.target, Column: cl, Delta: delta, Msg: msg})
}

// baseGeometry measures all visible columns and sums their natural widths.
// Elided columns are known only after measuring, so summing is a second walk.
func (c *calc) baseGeometry() error {
	tb := c.tb
	buf := NewBuffer()
	groupsPending := tb.HasGroups()

	for _, cl := range tb.Columns {
		if cl.IsHidden() {
			cl.Width = 0
			cl.Stats = WidthStats{}
			continue
		}
		// the group chart goes next to the first tree column only
		if cl.IsTree() && groupsPending {
			cl.isGroups = true
			groupsPending = false
		}
		if err := countColumnWidth(tb, cl, buf); err != nil {
			return err
		}
	}
	for _, cl := range tb.Columns {
		if !cl.laidOut() {
			continue
		}
		c.width += cl.Width + c.sepAfter(cl)
		c.minSum += cl.Stats.Min + c.sepAfter(cl)
		c.adjusted(PhaseBase, cl, 0, "natural width")
	}
	tb.emit(Event{Phase: PhaseBase, Width: c.width, Target: c.target, Msg: "base geometry"})
	return nil
}

// guardMinimum lowers minimum widths one cell per column, first to last,
// when even the minimums exceed a max-out target.
func (c *calc) guardMinimum() {
	if c.minSum <= c.target || !c.tb.MaxOut {
		return
	}
	c.order.forward(func(cl *Column) bool {
		if c.minSum <= c.target {
			return false
		}
		if !cl.laidOut() || cl.Stats.Min == 0 {
			return true
		}
		cl.Stats.Min--
		c.minSum--
		return true
	})
	c.tb.emit(Event{Phase: PhaseMinGuard, Width: c.minSum, Target: c.target, Msg: "minimum width reduced"})
}

// collectStats computes mean and deviation and returns the number of
// columns flagged for deviation balancing. Hidden columns count too; they
// only influence the visiting order.
func (c *calc) collectStats() int {
	eligible := 0
	for _, cl := range c.tb.Columns {
		if cl.IsNoExtremes() {
			eligible++
		}
		if cl.IsHidden() {
			continue
		}
		countColumnDeviation(c.tb, cl)
	}
	c.tb.emit(Event{Phase: PhaseStats, Width: c.width, Target: c.target, Msg: "deviation"})
	return eligible
}

// balanced reports whether cl takes part in deviation balancing.
func balanced(cl *Column) bool {
	return cl.IsNoExtremes() && cl.laidOut()
}

// shrinkExtremes reduces columns towards mean + n*deviation for n = 2 and
// then n = 1, most extreme column first (68-95-99.7 rule).
func (c *calc) shrinkExtremes() {
	c.order.sortByDeviation()

	for n := 2; n > 0 && c.width > c.target; n-- {
		c.order.backward(func(cl *Column) bool {
			if !balanced(cl) || cl.Stats.Deviation == 0 {
				return true
			}
			want := int(cl.Stats.Avg + float64(n)*cl.Stats.Deviation)
			if want < cl.Stats.Min {
				want = cl.Stats.Min
			}
			if want >= cl.Width {
				return true
			}
			reduce := cl.Width - want
			if c.width-reduce < c.target {
				reduce = c.width - c.target
			}
			cl.Width -= reduce
			c.width -= reduce
			c.adjusted(PhaseShrink, cl, -reduce, "reduce extreme")
			return c.width > c.target
		})
	}
}

// grow hands out spare width: first to balanced columns up to their
// maximum, then to everything (max-out) or to the last column.
func (c *calc) grow(useExtremes bool) {
	tb := c.tb

	if useExtremes {
		c.order.sortByDeviation()
		c.order.backward(func(cl *Column) bool {
			if !balanced(cl) {
				return true
			}
			add := c.target - c.width
			if cl.Width+add > cl.Stats.Max {
				add = max(cl.Stats.Max-cl.Width, 0)
			}
			if add > 0 {
				cl.Width += add
				c.width += add
				c.adjusted(PhaseGrow, cl, add, "enlarge extreme")
			}
			return c.width != c.target
		})
	}

	if c.width >= c.target {
		return
	}

	if tb.MaxOut {
		for c.width < c.target {
			progress := false
			c.order.backward(func(cl *Column) bool {
				if !cl.laidOut() || cl.IsStrictWidth() {
					return true
				}
				cl.Width++
				c.width++
				progress = true
				c.adjusted(PhaseGrow, cl, 1, "enlarge (max-out)")
				return c.width != c.target
			})
			if !progress {
				break
			}
		}
		return
	}

	last := tb.lastVisibleColumn()
	if last != nil && !last.IsRight() && !last.IsStrictWidth() {
		add := c.target - c.width
		last.Width += add
		c.width += add
		c.adjusted(PhaseGrow, last, add, "enlarge last column")
	}
}

var truncateStages = [...]string{
	1: "relative with trunc flag",
	2: "all with trunc flag",
	3: "relative without flag",
}

// truncate reduces columns in three stages until the output fits:
// truncatable columns wider than their relative hint, all truncatable
// columns, then columns with a relative hint. A stage without effect moves
// on to the next one.
func (c *calc) truncate() {
	tb := c.tb
	for stage := 1; c.width > c.target && stage <= 3; {
		before := c.width
		tb.emit(Event{Phase: PhaseTruncate, Width: c.width, Target: c.target, Msg: truncateStages[stage]})

		c.order.backward(func(cl *Column) bool {
			if !cl.laidOut() {
				return true
			}
			if c.width <= c.target {
				return false
			}
			if cl.Width <= cl.Stats.Min || cl.Width == 0 {
				return true
			}
			if cl.IsTree() && cl.Width <= cl.TreeArtWidth {
				return true
			}

			reduce := 1
			if cl.Stats.Deviation/2 > 1.0 {
				reduce = int(cl.Stats.Deviation)
			}
			reduce = min(reduce, cl.Width-cl.Stats.Min)
			if cl.IsTree() && cl.TreeArtWidth > 0 {
				reduce = min(reduce, cl.Width-cl.TreeArtWidth)
			}

			truncatable := cl.IsTrunc() || (cl.IsWrap() && !cl.IsCustomWrap())
			apply := false
			switch stage {
			case 1:
				apply = truncatable && cl.hasRelativeHint() &&
					cl.Width >= int(cl.WidthHint*float64(c.target))
			case 2:
				apply = truncatable
			case 3:
				apply = cl.hasRelativeHint()
			}
			if apply && reduce > 0 {
				cl.Width -= reduce
				c.width -= reduce
				c.adjusted(PhaseTruncate, cl, -reduce, "truncate")
			}
			if cl.Width == 0 {
				cl.setAuto(FlagHidden)
			}
			return true
		})

		if before == c.width {
			stage++
		}
	}
}

// forceFit cuts or hides columns from the right until the output fits on a
// single row.
func (c *calc) forceFit() {
	tb := c.tb
	for i := len(tb.Columns) - 1; i >= 0 && c.width > c.target; i-- {
		cl := tb.Columns[i]
		if !cl.laidOut() {
			continue
		}
		if c.width-cl.Width < c.target {
			r := c.width - c.target
			cl.setAuto(FlagTrunc)
			cl.Width -= r
			c.width -= r
			c.adjusted(PhaseNoWrap, cl, -r, "force truncate")
			continue
		}
		c.width -= cl.Width + c.sep
		cl.setAuto(FlagHidden)
		c.adjusted(PhaseNoWrap, cl, -cl.Width, "hide")
	}
}
