// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package columns

// maxSqrtSteps bounds the Newton iteration; it converges long before.
const maxSqrtSteps = 64

// countColumnWidth resets the column's statistics, measures every cell and
// sets the column's initial width.
func countColumnWidth(tb *Table, cl *Column, buf *Buffer) error {
	st := &cl.Stats
	*st = WidthStats{}
	cl.Width = 0
	cl.TreeArtWidth = 0
	cl.noHeader = false
	cl.elided = false

	target := tb.Target()
	if cl.hasRelativeHint() && tb.MaxOut && tb.IsTerm {
		st.Min = int(cl.WidthHint * float64(target))
		if st.Min > 0 && !tb.IsLastColumn(cl) {
			st.Min--
		}
	}

	if cl.Header != "" {
		st.Min = max(st.Min, tb.measure(cl.Header))
	} else {
		cl.noHeader = true
	}
	if st.Min == 0 {
		st.Min = 1
	}

	visit := func(ln *Line) error { return measureCell(tb, ln, cl, buf) }
	var err error
	if tb.IsTree() {
		err = WalkTree(tb, visit)
	} else {
		for _, ln := range tb.Lines {
			if err = visit(ln); err != nil {
				break
			}
		}
	}
	if err != nil {
		return err
	}

	contentMax := st.Max
	if cl.isGroups {
		st.Max += tb.GroupSetSize + 1
	}
	if st.Max < st.Min {
		st.Max = st.Min
	}

	cl.Width = st.Max
	if cl.Width < st.Min && !cl.IsStrictWidth() {
		cl.Width = st.Min
	} else if hint := int(cl.WidthHint); cl.WidthHint >= 1 && cl.Width < hint && st.Min < hint {
		cl.Width = hint
	}

	// no header and no data: nothing to print at all
	if contentMax == 0 && cl.noHeader && !cl.isGroups && st.Min == 1 && cl.Width <= 1 {
		cl.Width = 0
		st.Min = 0
		st.Max = 0
		cl.elided = true
	}
	return nil
}

// countColumnDeviation computes the mean and sample standard deviation of
// the column's cell widths.
func countColumnDeviation(tb *Table, cl *Column) {
	st := &cl.Stats
	extra := 0
	if cl.isGroups {
		extra = tb.GroupSetSize + 1
	}

	sum, n := 0, 0
	for _, ln := range tb.Lines {
		w := 0
		if ce := ln.Cell(cl.seq); ce != nil {
			w = ce.Width
		}
		sum += w + extra
		n++
	}
	if n == 0 {
		return
	}
	// integer mean
	st.Avg = float64(sum / n)

	if n > 1 {
		for _, ln := range tb.Lines {
			w := 0
			if ce := ln.Cell(cl.seq); ce != nil {
				w = ce.Width
			}
			diff := float64(w) - st.Avg
			st.SqrSum += diff * diff
		}
		st.Deviation = sqrtRoot(st.SqrSum / float64(n-1))
	}
}

// sqrtRoot is Newton's method iterated until the estimate stops changing.
func sqrtRoot(num float64) float64 {
	if num <= 0 {
		return 0
	}
	tmp, sq := 0.0, num/2
	for i := 0; sq != tmp && i < maxSqrtSteps; i++ {
		tmp = sq
		sq = (num/tmp + tmp) / 2
	}
	return sq
}
