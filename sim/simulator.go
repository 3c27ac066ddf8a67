// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/YashVerma-code/OS-Assignment/sim/trace"
)

// Simulator is the core object that holds simulation time, the process arena,
// the three queues, both devices and the tick loop.
// Not safe for concurrent use.
type Simulator struct {
	Clock int64
	// Processes is the arena; queues and devices refer to entries by ProcessID.
	Processes []*Process
	// ReadyQ holds processes eligible for the CPU.
	ReadyQ *ProcessQueue
	// AuxQ holds processes returning from I/O (used by policies whose
	// IOReturnQueue is QueueAux).
	AuxQ *ProcessQueue
	// IOQ holds blocked processes waiting for the I/O device.
	IOQ   *ProcessQueue
	CPU   *CPUDevice
	IO    *IODevice
	Trace *trace.SimulationTrace

	config       Config
	policy       DispatchPolicy
	arrivalOrder []ProcessID
	nextArrival  int
	unterminated int
	dispatches   int64
	preemptions  int64
}

// NewSimulator validates the configuration and descriptors and builds a
// simulator at tick 0 with every process not yet arrived.
func NewSimulator(cfg Config, descs []Descriptor) (*Simulator, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateDescriptors(descs); err != nil {
		return nil, err
	}

	n := len(descs)
	s := &Simulator{
		Processes:    make([]*Process, n),
		ReadyQ:       NewProcessQueue("ready", n),
		AuxQ:         NewProcessQueue("aux", n),
		IOQ:          NewProcessQueue("io", n),
		CPU:          NewCPUDevice(cfg.Quantum),
		IO:           &IODevice{},
		Trace:        trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(cfg.TraceLevel)}),
		config:       cfg,
		policy:       NewPolicy(cfg.Policy),
		arrivalOrder: make([]ProcessID, n),
		unterminated: n,
	}
	for i, d := range descs {
		s.Processes[i] = NewProcess(ProcessID(i), d)
		s.arrivalOrder[i] = ProcessID(i)
	}
	// Stable sort keeps input order among simultaneous arrivals.
	sort.SliceStable(s.arrivalOrder, func(i, j int) bool {
		return s.Processes[s.arrivalOrder[i]].ArrivalTime < s.Processes[s.arrivalOrder[j]].ArrivalTime
	})
	return s, nil
}

// Config returns the effective configuration (defaults applied).
func (sim *Simulator) Config() Config {
	return sim.config
}

// Policy returns the dispatch policy driving this run.
func (sim *Simulator) Policy() DispatchPolicy {
	return sim.policy
}

// Done reports whether every process has terminated.
func (sim *Simulator) Done() bool {
	return sim.unterminated == 0
}

// Run advances the clock until every process has terminated.
func (sim *Simulator) Run() error {
	logrus.Infof("[tick %07d] Simulation started: policy=%s quantum=%d processes=%d",
		sim.Clock, sim.policy.Name(), sim.config.Quantum, len(sim.Processes))
	for !sim.Done() {
		if sim.config.Horizon > 0 && sim.Clock > sim.config.Horizon {
			return fmt.Errorf("%w: %d processes unterminated at tick %d", ErrHorizonExceeded, sim.unterminated, sim.Clock)
		}
		if err := sim.Step(); err != nil {
			return fmt.Errorf("tick %d: %w", sim.Clock, err)
		}
	}
	logrus.Infof("[tick %07d] Simulation ended", sim.Clock)
	return nil
}

// Step simulates one tick: arrivals, CPU, dispatch, I/O, then the clock advances.
// All transitions of a tick are applied before the clock moves.
func (sim *Simulator) Step() error {
	if sim.CPU.Idle() {
		sim.emit(trace.DeviceCPU, trace.KindIdle, nil, 0)
	}
	if err := sim.admitArrivals(); err != nil {
		return err
	}
	if err := sim.stepCPU(); err != nil {
		return err
	}
	if err := sim.dispatch(); err != nil {
		return err
	}
	if err := sim.stepIO(); err != nil {
		return err
	}
	sim.Clock++
	return nil
}

// admitArrivals moves processes arriving at the current tick to the ready queue.
func (sim *Simulator) admitArrivals() error {
	for sim.nextArrival < len(sim.arrivalOrder) {
		p := sim.Processes[sim.arrivalOrder[sim.nextArrival]]
		if p.ArrivalTime > sim.Clock {
			break
		}
		if err := sim.ReadyQ.Enqueue(p.ID); err != nil {
			return err
		}
		p.State = StateReady
		sim.nextArrival++
		sim.emit(trace.DeviceCPU, trace.KindArrive, p, 0)
	}
	return nil
}

// stepCPU executes the occupant for one tick and applies its transition.
func (sim *Simulator) stepCPU() error {
	id, ok := sim.CPU.Occupant()
	if !ok {
		sim.CPU.Step(nil, sim.Clock)
		return nil
	}
	p := sim.Processes[id]
	switch sim.CPU.Step(p, sim.Clock) {
	case CPUTerminated:
		sim.unterminated--
		sim.emit(trace.DeviceCPU, trace.KindComplete, p, 0)
	case CPUBlocked:
		if err := sim.IOQ.Enqueue(id); err != nil {
			return err
		}
		sim.emit(trace.DeviceCPU, trace.KindBlock, p, p.Remaining)
	case CPURan:
		sim.emit(trace.DeviceCPU, trace.KindRun, p, p.Remaining)
	}
	return nil
}

func (sim *Simulator) view() DispatchView {
	v := DispatchView{
		Processes: sim.Processes,
		Ready:     sim.ReadyQ,
		Aux:       sim.AuxQ,
		CPU:       sim.CPU,
	}
	if id, ok := sim.CPU.Occupant(); ok {
		v.Running = sim.Processes[id]
	}
	return v
}

func (sim *Simulator) queue(k QueueKind) *ProcessQueue {
	if k == QueueAux {
		return sim.AuxQ
	}
	return sim.ReadyQ
}

// dispatch re-arms the CPU when it is idle or the policy preempts the occupant.
// A displaced occupant goes to the back of the ready queue.
func (sim *Simulator) dispatch() error {
	if sim.ReadyQ.Len() == 0 && sim.AuxQ.Len() == 0 {
		return nil
	}
	v := sim.view()
	if !sim.CPU.Idle() && !sim.policy.Preempt(v) {
		return nil
	}
	sel := sim.policy.Select(v)
	next, err := sim.queue(sel.Queue).RemoveAt(sel.Index)
	if err != nil {
		return err
	}
	if prev, ok := sim.CPU.Release(); ok {
		sim.Processes[prev].State = StateReady
		if err := sim.ReadyQ.Enqueue(prev); err != nil {
			return err
		}
		sim.preemptions++
	}
	p := sim.Processes[next]
	p.State = StateRunning
	p.markStarted(sim.Clock)
	sim.CPU.Load(next, sel.Slice)
	sim.dispatches++
	sim.emit(trace.DeviceCPU, trace.KindDispatch, p, sel.Slice)
	return nil
}

// stepIO serves the I/O device for one tick, then starts the next request
// if the device is free.
func (sim *Simulator) stepIO() error {
	if id, ok := sim.IO.Serving(); ok {
		p := sim.Processes[id]
		if sim.IO.Advance(p) {
			p.State = StateReady
			if err := sim.queue(sim.policy.IOReturnQueue()).Enqueue(id); err != nil {
				return err
			}
			sim.emit(trace.DeviceIO, trace.KindIODone, p, p.IOProgress)
		} else {
			sim.emit(trace.DeviceIO, trace.KindIOProgress, p, p.IOProgress)
		}
	}
	if sim.IO.Idle() && sim.IOQ.Len() > 0 {
		id, err := sim.IOQ.Dequeue()
		if err != nil {
			return err
		}
		p := sim.Processes[id]
		sim.IO.Begin(p)
		sim.emit(trace.DeviceIO, trace.KindIOStart, p, 0)
	}
	return nil
}

func (sim *Simulator) emit(dev trace.Device, kind trace.EventKind, p *Process, value int64) {
	ev := trace.TickEvent{Tick: sim.Clock, Device: dev, Kind: kind, Value: value}
	if p != nil {
		ev.Process = p.Name
	}
	logrus.Debugf("[tick %07d] %-3s %s", sim.Clock, dev, ev)
	sim.Trace.RecordEvent(ev)
}

// Result is the outcome of one simulation run.
type Result struct {
	Policy  string            `json:"policy"`
	Quantum int64             `json:"quantum"`
	Metrics *Metrics          `json:"metrics"`
	Trace   []trace.TickEvent `json:"trace,omitempty"`
}

// Simulate builds a simulator, runs it to completion and collects its metrics.
func Simulate(cfg Config, descs []Descriptor) (*Result, error) {
	s, err := NewSimulator(cfg, descs)
	if err != nil {
		return nil, err
	}
	if err := s.Run(); err != nil {
		return nil, err
	}
	res := &Result{
		Policy:  s.policy.Name(),
		Quantum: s.config.Quantum,
		Metrics: s.Metrics(),
	}
	if s.Trace.Enabled() {
		res.Trace = s.Trace.Events
	}
	return res, nil
}

// Compare runs the same workload under each named policy, in order.
// An empty list compares every policy in PolicyNames order.
func Compare(cfg Config, descs []Descriptor, policies []string) ([]*Result, error) {
	if len(policies) == 0 {
		policies = PolicyNames()
	}
	results := make([]*Result, 0, len(policies))
	for _, name := range policies {
		c := cfg
		c.Policy = name
		res, err := Simulate(c, descs)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", name, err)
		}
		results = append(results, res)
	}
	return results, nil
}
