package sim

import "fmt"

// ProcessID indexes a process in the Simulator's arena.
// IDs are assigned in input order starting at 0 and never change.
type ProcessID int

// ProcessState is the lifecycle state of a process.
type ProcessState string

const (
	StateNew        ProcessState = "new" // not yet arrived
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateBlocked    ProcessState = "blocked"
	StateTerminated ProcessState = "terminated"
)

// Descriptor is the static input for one process.
type Descriptor struct {
	Name        string `yaml:"name" json:"name"`
	ArrivalTime int64  `yaml:"arrival" json:"arrival"`
	BurstCPU    int64  `yaml:"cpu_burst" json:"cpu_burst"`
	BurstIO     int64  `yaml:"io_burst" json:"io_burst"`
	// IORate is the number of CPU ticks executed between I/O requests.
	// Zero means the process never blocks.
	IORate int64 `yaml:"io_rate" json:"io_rate"`
}

// Validate rejects descriptors the engine cannot simulate.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDescriptor)
	}
	if d.ArrivalTime < 0 {
		return fmt.Errorf("%w: %s: negative arrival %d", ErrInvalidDescriptor, d.Name, d.ArrivalTime)
	}
	if d.BurstCPU <= 0 {
		return fmt.Errorf("%w: %s: cpu burst must be positive, got %d", ErrInvalidDescriptor, d.Name, d.BurstCPU)
	}
	if d.BurstIO < 0 {
		return fmt.Errorf("%w: %s: negative io burst %d", ErrInvalidDescriptor, d.Name, d.BurstIO)
	}
	if d.IORate < 0 {
		return fmt.Errorf("%w: %s: negative io rate %d", ErrInvalidDescriptor, d.Name, d.IORate)
	}
	return nil
}

// ValidateDescriptors validates each descriptor and checks that names are unique.
func ValidateDescriptors(descs []Descriptor) error {
	if len(descs) == 0 {
		return fmt.Errorf("%w: no processes", ErrInvalidDescriptor)
	}
	seen := make(map[string]int, len(descs))
	for i, d := range descs {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("process %d: %w", i, err)
		}
		if j, dup := seen[d.Name]; dup {
			return fmt.Errorf("%w: duplicate name %q at positions %d and %d", ErrInvalidDescriptor, d.Name, j, i)
		}
		seen[d.Name] = i
	}
	return nil
}

// Process is the mutable simulation record for one descriptor.
// The Simulator's arena owns every Process; queues and devices hold ProcessIDs.
type Process struct {
	ID ProcessID
	Descriptor

	State     ProcessState
	Remaining int64 // CPU ticks still owed
	SinceIO   int64 // CPU ticks since the last I/O request
	// SavedSlice is the quantum already consumed when the process blocked,
	// restored on dispatch from the auxiliary queue.
	SavedSlice int64
	IOProgress int64 // ticks of the current I/O burst served
	IORequests int64

	CPUTicks int64 // ticks spent executing
	IOTicks  int64 // ticks spent in I/O service

	start      int64
	hasStart   bool
	completion int64
	completed  bool
}

// NewProcess creates a process in StateNew from its descriptor.
func NewProcess(id ProcessID, d Descriptor) *Process {
	return &Process{
		ID:         id,
		Descriptor: d,
		State:      StateNew,
		Remaining:  d.BurstCPU,
	}
}

// DoesIO reports whether the process ever blocks for I/O.
func (p *Process) DoesIO() bool {
	return p.IORate > 0 && p.BurstIO > 0
}

// StartTime returns the first tick the process was placed on the CPU.
func (p *Process) StartTime() (int64, bool) {
	return p.start, p.hasStart
}

// CompletionTime returns the tick the CPU burst reached zero.
func (p *Process) CompletionTime() (int64, bool) {
	return p.completion, p.completed
}

// markStarted records the start time once; later calls are no-ops.
func (p *Process) markStarted(tick int64) {
	if p.hasStart {
		return
	}
	p.start = tick
	p.hasStart = true
}

// Execute consumes one CPU tick. It returns true when the burst is finished,
// in which case the process is Terminated with completion time tick.
func (p *Process) Execute(tick int64) bool {
	if p.completed || p.Remaining <= 0 {
		panic(fmt.Sprintf("Execute: process %s already finished", p.Name))
	}
	p.Remaining--
	p.CPUTicks++
	if p.Remaining == 0 {
		p.State = StateTerminated
		p.completion = tick
		p.completed = true
		return true
	}
	return false
}

// DueForIO advances the I/O interval counter and reports whether the process
// must block now. The counter resets when it fires.
func (p *Process) DueForIO() bool {
	if !p.DoesIO() {
		return false
	}
	p.SinceIO++
	if p.SinceIO < p.IORate {
		return false
	}
	p.SinceIO = 0
	p.IORequests++
	return true
}

func (p *Process) String() string {
	return fmt.Sprintf("%s(%s, remaining=%d)", p.Name, p.State, p.Remaining)
}
