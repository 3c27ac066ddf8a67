package trace

import (
	"fmt"
	"io"
)

// TraceLevel controls the verbosity of event tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures every CPU and I/O device event.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects tick events during a simulation.
type SimulationTrace struct {
	Config TraceConfig
	Events []TickEvent
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Events: make([]TickEvent, 0),
	}
}

// Enabled reports whether events are kept.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelEvents
}

// RecordEvent appends an event if tracing is enabled.
func (st *SimulationTrace) RecordEvent(ev TickEvent) {
	if !st.Enabled() {
		return
	}
	st.Events = append(st.Events, ev)
}

// Render writes events as "tick<TAB>device<TAB><TAB>event" lines under a header.
func Render(w io.Writer, events []TickEvent) error {
	if _, err := fmt.Fprintln(w, "Time (tick)\tDevice\t\tProcess Served"); err != nil {
		return err
	}
	for _, ev := range events {
		if _, err := fmt.Fprintf(w, "%d\t%s\t\t%s\n", ev.Tick, ev.Device, ev); err != nil {
			return err
		}
	}
	return nil
}
