package trace

import (
	"bytes"
	"strings"
	"testing"
)

func TestSimulationTrace_RecordEvent_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for events
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})

	// WHEN an event is recorded
	st.RecordEvent(TickEvent{Tick: 3, Device: DeviceCPU, Kind: KindArrive, Process: "P1"})

	// THEN the trace contains one event with correct data
	if len(st.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(st.Events))
	}
	if st.Events[0].Process != "P1" || st.Events[0].Tick != 3 {
		t.Errorf("unexpected event %+v", st.Events[0])
	}
}

func TestSimulationTrace_LevelNone_DropsEvents(t *testing.T) {
	// GIVEN a disabled trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelNone})

	// WHEN events are recorded
	st.RecordEvent(TickEvent{Tick: 0, Device: DeviceCPU, Kind: KindIdle})

	// THEN nothing is kept
	if len(st.Events) != 0 {
		t.Errorf("expected no events, got %d", len(st.Events))
	}
}

func TestSimulationTrace_NilTrace_RecordIsSafe(t *testing.T) {
	var st *SimulationTrace
	st.RecordEvent(TickEvent{Tick: 0})
	if st.Enabled() {
		t.Error("nil trace must report disabled")
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})
	st.RecordEvent(TickEvent{Tick: 0, Device: DeviceCPU, Kind: KindArrive, Process: "A"})
	st.RecordEvent(TickEvent{Tick: 0, Device: DeviceCPU, Kind: KindArrive, Process: "B"})
	st.RecordEvent(TickEvent{Tick: 0, Device: DeviceCPU, Kind: KindDispatch, Process: "A"})

	got := make([]string, 0, len(st.Events))
	for _, ev := range st.Events {
		got = append(got, ev.String())
	}
	want := []string{"A[Arrive]", "B[Arrive]", "A[Sched]#q=0"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTickEvent_String(t *testing.T) {
	tests := []struct {
		ev   TickEvent
		want string
	}{
		{TickEvent{Kind: KindIdle}, "-"},
		{TickEvent{Kind: KindArrive, Process: "P0"}, "P0[Arrive]"},
		{TickEvent{Kind: KindRun, Process: "P0", Value: 23}, "P0:23"},
		{TickEvent{Kind: KindBlock, Process: "P0", Value: 19}, "P0[Q IO]:19"},
		{TickEvent{Kind: KindComplete, Process: "P0"}, "P0[Comp]"},
		{TickEvent{Kind: KindDispatch, Process: "P2", Value: 4}, "P2[Sched]#q=4"},
		{TickEvent{Kind: KindIOStart, Process: "P1"}, "P1[Sched]:0"},
		{TickEvent{Kind: KindIOProgress, Process: "P1", Value: 2}, "P1:2"},
		{TickEvent{Kind: KindIODone, Process: "P1", Value: 3}, "P1[Comp]:3"},
	}
	for _, tt := range tests {
		t.Run(string(tt.ev.Kind), func(t *testing.T) {
			if got := tt.ev.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_WritesHeaderAndLines(t *testing.T) {
	// GIVEN two events
	events := []TickEvent{
		{Tick: 0, Device: DeviceCPU, Kind: KindIdle},
		{Tick: 7, Device: DeviceIO, Kind: KindIODone, Process: "P0", Value: 2},
	}

	// WHEN rendered
	var buf bytes.Buffer
	if err := Render(&buf, events); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// THEN each event is one tab-separated line after the header
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[1] != "0\tCPU\t\t-" {
		t.Errorf("line 1: got %q", lines[1])
	}
	if lines[2] != "7\tIO\t\tP0[Comp]:2" {
		t.Errorf("line 2: got %q", lines[2])
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"events", true},
		{"", true}, // empty defaults to none
		{"decisions", false},
		{"EVENTS", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}
