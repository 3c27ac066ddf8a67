package sim

import (
	"fmt"
	"sort"
)

// QueueKind names one of the simulator's CPU-bound queues.
type QueueKind int

const (
	QueueReady QueueKind = iota
	QueueAux             // processes returning from I/O
)

func (k QueueKind) String() string {
	switch k {
	case QueueReady:
		return "ready"
	case QueueAux:
		return "aux"
	default:
		return fmt.Sprintf("QueueKind(%d)", int(k))
	}
}

// Selection is a dispatch decision: take the entry at Index of Queue and
// start it with Slice ticks of its quantum already consumed.
type Selection struct {
	Queue QueueKind
	Index int
	Slice int64
}

// DispatchView is the read-only state a policy decides on.
type DispatchView struct {
	Processes []*Process
	Ready     *ProcessQueue
	Aux       *ProcessQueue
	// Running is the CPU occupant, nil when the CPU is idle.
	Running *Process
	CPU     *CPUDevice
}

// DispatchPolicy decides when the CPU occupant is displaced and which
// queued process replaces it. Implementations must be deterministic.
type DispatchPolicy interface {
	Name() string
	// Preempt is called only when the CPU is occupied and a queue is non-empty.
	Preempt(v DispatchView) bool
	// Select picks the next occupant; called only when a queue is non-empty.
	Select(v DispatchView) Selection
	// IOReturnQueue is where a process goes when its I/O burst completes.
	IOReturnQueue() QueueKind
}

// VRRPolicy is Virtual Round Robin: processes returning from I/O wait in the
// auxiliary queue, are dispatched before the ready queue, and resume the
// quantum they had consumed when they blocked.
type VRRPolicy struct{}

func (VRRPolicy) Name() string { return "vrr" }

func (VRRPolicy) Preempt(v DispatchView) bool { return v.CPU.QuantumExpired() }

func (VRRPolicy) Select(v DispatchView) Selection {
	if id, ok := v.Aux.Peek(); ok {
		return Selection{Queue: QueueAux, Index: 0, Slice: v.Processes[id].SavedSlice}
	}
	return Selection{Queue: QueueReady, Index: 0}
}

func (VRRPolicy) IOReturnQueue() QueueKind { return QueueAux }

// RRPolicy is plain Round Robin: every dispatch starts a fresh quantum and
// I/O-returning processes rejoin the ready queue.
type RRPolicy struct{}

func (RRPolicy) Name() string                    { return "rr" }
func (RRPolicy) Preempt(v DispatchView) bool     { return v.CPU.QuantumExpired() }
func (RRPolicy) Select(_ DispatchView) Selection { return Selection{Queue: QueueReady} }
func (RRPolicy) IOReturnQueue() QueueKind        { return QueueReady }

// FCFSPolicy runs processes in ready-queue order without preemption.
type FCFSPolicy struct{}

func (FCFSPolicy) Name() string                    { return "fcfs" }
func (FCFSPolicy) Preempt(_ DispatchView) bool     { return false }
func (FCFSPolicy) Select(_ DispatchView) Selection { return Selection{Queue: QueueReady} }
func (FCFSPolicy) IOReturnQueue() QueueKind        { return QueueReady }

// SJFPolicy is non-preemptive Shortest Job First on the remaining CPU burst.
// Ties go to the earliest-queued process.
type SJFPolicy struct{}

func (SJFPolicy) Name() string                { return "sjf" }
func (SJFPolicy) Preempt(_ DispatchView) bool { return false }
func (SJFPolicy) Select(v DispatchView) Selection {
	return Selection{Queue: QueueReady, Index: shortestRemaining(v)}
}
func (SJFPolicy) IOReturnQueue() QueueKind { return QueueReady }

// SRTFPolicy is preemptive Shortest Remaining Time First. The occupant is
// displaced only by a strictly shorter queued process.
type SRTFPolicy struct{}

func (SRTFPolicy) Name() string { return "srtf" }

func (SRTFPolicy) Preempt(v DispatchView) bool {
	if v.Running == nil || v.Ready.Len() == 0 {
		return false
	}
	best := v.Processes[v.Ready.Items()[shortestRemaining(v)]]
	return best.Remaining < v.Running.Remaining
}

func (SRTFPolicy) Select(v DispatchView) Selection {
	return Selection{Queue: QueueReady, Index: shortestRemaining(v)}
}

func (SRTFPolicy) IOReturnQueue() QueueKind { return QueueReady }

// shortestRemaining returns the ready-queue index of the process with the
// least remaining CPU burst, preferring the earliest entry on ties.
func shortestRemaining(v DispatchView) int {
	items := v.Ready.Items()
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return v.Processes[items[idx[a]]].Remaining < v.Processes[items[idx[b]]].Remaining
	})
	return idx[0]
}

// ValidPolicies is the set of recognized dispatch policy names.
// Empty string selects DefaultPolicy.
var ValidPolicies = map[string]bool{"": true, "vrr": true, "rr": true, "fcfs": true, "sjf": true, "srtf": true}

// IsValidPolicy returns true if name is a recognized dispatch policy.
func IsValidPolicy(name string) bool { return ValidPolicies[name] }

// PolicyNames returns the recognized policy names in a stable order.
func PolicyNames() []string {
	return []string{"vrr", "rr", "fcfs", "sjf", "srtf"}
}

// NewPolicy creates a DispatchPolicy by name.
// Valid names: "vrr" (default), "rr", "fcfs", "sjf", "srtf".
// Panics on unrecognized names.
func NewPolicy(name string) DispatchPolicy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown dispatch policy %q", name))
	}
	switch name {
	case "", "vrr":
		return VRRPolicy{}
	case "rr":
		return RRPolicy{}
	case "fcfs":
		return FCFSPolicy{}
	case "sjf":
		return SJFPolicy{}
	case "srtf":
		return SRTFPolicy{}
	default:
		panic(fmt.Sprintf("unhandled dispatch policy %q", name))
	}
}
