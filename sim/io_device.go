package sim

import "fmt"

// IODevice models a single-server I/O device. Waiting processes stay in the
// simulator's I/O queue; only the process in service makes progress.
type IODevice struct {
	serving ProcessID
	busy    bool

	BusyTicks int64
}

// Serving returns the process in service, if any.
func (d *IODevice) Serving() (ProcessID, bool) {
	return d.serving, d.busy
}

// Idle reports whether the device is free.
func (d *IODevice) Idle() bool {
	return !d.busy
}

// Begin starts serving p with its progress counter reset.
func (d *IODevice) Begin(p *Process) {
	if d.busy {
		panic(fmt.Sprintf("IODevice.Begin: process %d started while %d is in service", p.ID, d.serving))
	}
	d.serving = p.ID
	d.busy = true
	p.IOProgress = 0
}

// Advance serves p for one tick and reports whether its I/O burst is done.
// The device is freed on completion.
func (d *IODevice) Advance(p *Process) bool {
	if !d.busy || p.ID != d.serving {
		panic(fmt.Sprintf("IODevice.Advance: process %d is not in service", p.ID))
	}
	d.BusyTicks++
	p.IOProgress++
	p.IOTicks++
	if p.IOProgress >= p.BurstIO {
		d.busy = false
		return true
	}
	return false
}
