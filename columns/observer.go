// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package columns

import "github.com/rs/zerolog"

// Phase identifies a step of Calculate.
type Phase int

const (
	PhaseStart    Phase = iota // before any measurement
	PhaseBase                  // natural widths known
	PhaseMinGuard              // minimum widths reduced to fit
	PhaseStats                 // mean and deviation known
	PhaseShrink                // extreme columns reduced
	PhaseGrow                  // spare width handed out
	PhaseTruncate              // truncation stages
	PhaseRestore               // sequence order restored
	PhaseNoWrap                // last columns cut or hidden
	PhaseDone
)

var phaseNames = [...]string{
	PhaseStart:    "start",
	PhaseBase:     "base",
	PhaseMinGuard: "min-guard",
	PhaseStats:    "stats",
	PhaseShrink:   "shrink",
	PhaseGrow:     "grow",
	PhaseTruncate: "truncate",
	PhaseRestore:  "restore",
	PhaseNoWrap:   "nowrap",
	PhaseDone:     "done",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Event describes a step of the allocation. Column is nil for phase
// boundaries and set for per-column adjustments.
type Event struct {
	Phase  Phase
	Width  int // total width after the step
	Target int
	Column *Column
	Delta  int // width change applied to Column
	Msg    string
}

// Observer receives allocation events. It must not modify the table.
type Observer interface {
	Observe(ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event)

func (f ObserverFunc) Observe(ev Event) { f(ev) }

// LogObserver writes events to a zerolog logger at debug level.
type LogObserver struct {
	Logger zerolog.Logger
}

func (o LogObserver) Observe(ev Event) {
	e := o.Logger.Debug().
		Str("phase", ev.Phase.String()).
		Int("width", ev.Width).
		Int("target", ev.Target)
	if cl := ev.Column; cl != nil {
		e = e.Str("column", cl.Header).
			Int("seq", cl.seq).
			Int("colWidth", cl.Width).
			Int("delta", ev.Delta).
			Int("min", cl.Stats.Min).
			Int("max", cl.Stats.Max).
			Float64("avg", cl.Stats.Avg).
			Float64("deviation", cl.Stats.Deviation)
	}
	e.Msg(ev.Msg)
}

func (tb *Table) emit(ev Event) {
	if tb.Observer != nil {
		tb.Observer.Observe(ev)
	}
}
