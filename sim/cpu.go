package sim

import "fmt"

// CPUOutcome is the result of advancing the CPU by one tick.
type CPUOutcome int

const (
	CPUIdle       CPUOutcome = iota // no occupant
	CPURan                          // occupant keeps the CPU
	CPUTerminated                   // occupant finished its burst; CPU freed
	CPUBlocked                      // occupant issued an I/O request; CPU freed
)

// CPUDevice models a single CPU. Slice counts the ticks the occupant has
// consumed in its current quantum.
type CPUDevice struct {
	Quantum int64
	Slice   int64

	running  ProcessID
	occupied bool

	BusyTicks int64
	IdleTicks int64
}

// NewCPUDevice creates an idle CPU with the given quantum length.
func NewCPUDevice(quantum int64) *CPUDevice {
	return &CPUDevice{Quantum: quantum}
}

// Occupant returns the running process, if any.
func (c *CPUDevice) Occupant() (ProcessID, bool) {
	return c.running, c.occupied
}

// Idle reports whether no process holds the CPU.
func (c *CPUDevice) Idle() bool {
	return !c.occupied
}

// Load places a process on the CPU with its quantum counter at slice.
// Panics if the CPU is occupied; callers release the previous occupant first.
func (c *CPUDevice) Load(id ProcessID, slice int64) {
	if c.occupied {
		panic(fmt.Sprintf("CPUDevice.Load: process %d loaded while %d is running", id, c.running))
	}
	c.running = id
	c.occupied = true
	c.Slice = slice
}

// Release frees the CPU and returns the process that held it.
func (c *CPUDevice) Release() (ProcessID, bool) {
	id, ok := c.running, c.occupied
	c.occupied = false
	return id, ok
}

// Step executes the occupant p for one tick at the given clock.
// On an I/O request the consumed part of the quantum is saved on p.
func (c *CPUDevice) Step(p *Process, tick int64) CPUOutcome {
	if !c.occupied {
		c.IdleTicks++
		return CPUIdle
	}
	if p.ID != c.running {
		panic(fmt.Sprintf("CPUDevice.Step: got process %d, running %d", p.ID, c.running))
	}
	c.BusyTicks++
	c.Slice++
	if p.Execute(tick) {
		c.occupied = false
		return CPUTerminated
	}
	if p.DueForIO() {
		p.SavedSlice = c.Slice % c.Quantum
		p.State = StateBlocked
		c.occupied = false
		return CPUBlocked
	}
	return CPURan
}

// QuantumExpired reports whether the occupant has used its whole quantum.
func (c *CPUDevice) QuantumExpired() bool {
	return c.occupied && c.Slice >= c.Quantum
}
