// Package trace provides per-tick event recording for scheduling simulations.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import "fmt"

// Device identifies which simulated device produced an event.
type Device string

const (
	DeviceCPU Device = "CPU"
	DeviceIO  Device = "IO"
)

// EventKind classifies a tick event.
type EventKind string

const (
	KindIdle       EventKind = "idle"        // CPU has no occupant at the start of the tick
	KindArrive     EventKind = "arrive"      // process entered the ready queue
	KindRun        EventKind = "run"         // occupant executed one tick; Value = remaining burst
	KindBlock      EventKind = "block"       // occupant issued an I/O request; Value = remaining burst
	KindComplete   EventKind = "complete"    // occupant finished its CPU burst
	KindDispatch   EventKind = "dispatch"    // process placed on the CPU; Value = resumed slice
	KindIOStart    EventKind = "io-start"    // process entered I/O service
	KindIOProgress EventKind = "io-progress" // in-service process advanced; Value = progress
	KindIODone     EventKind = "io-done"     // I/O finished; Value = progress
)

// TickEvent captures a single device event at a simulated tick.
type TickEvent struct {
	Tick    int64     `json:"tick"`
	Device  Device    `json:"device"`
	Kind    EventKind `json:"kind"`
	Process string    `json:"process,omitempty"`
	Value   int64     `json:"value"`
}

// String renders the event column of the trace, e.g. "P0[Sched]#q=0".
func (e TickEvent) String() string {
	switch e.Kind {
	case KindIdle:
		return "-"
	case KindArrive:
		return fmt.Sprintf("%s[Arrive]", e.Process)
	case KindRun, KindIOProgress:
		return fmt.Sprintf("%s:%d", e.Process, e.Value)
	case KindBlock:
		return fmt.Sprintf("%s[Q IO]:%d", e.Process, e.Value)
	case KindComplete:
		return fmt.Sprintf("%s[Comp]", e.Process)
	case KindDispatch:
		return fmt.Sprintf("%s[Sched]#q=%d", e.Process, e.Value)
	case KindIOStart:
		return fmt.Sprintf("%s[Sched]:%d", e.Process, e.Value)
	case KindIODone:
		return fmt.Sprintf("%s[Comp]:%d", e.Process, e.Value)
	default:
		return fmt.Sprintf("%s[%s]:%d", e.Process, e.Kind, e.Value)
	}
}
