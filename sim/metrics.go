// sim/metrics.go
package sim

// ProcessMetrics is the terminal record of one process.
type ProcessMetrics struct {
	Name       string `json:"name"`
	Arrival    int64  `json:"arrival"`
	BurstCPU   int64  `json:"cpu_burst"`
	Start      int64  `json:"start"`
	Completion int64  `json:"completion"`
	Turnaround int64  `json:"turnaround"` // completion - arrival
	Waiting    int64  `json:"waiting"`    // turnaround - cpu burst
	Response   int64  `json:"response"`   // start - arrival
	CPUTicks   int64  `json:"cpu_ticks"`
	IOTicks    int64  `json:"io_ticks"`
	IORequests int64  `json:"io_requests"`
}

// Metrics aggregates the outcome of a completed run.
type Metrics struct {
	Processes []ProcessMetrics `json:"processes"`
	Completed int              `json:"completed"`

	TotalTicks   int64 `json:"total_ticks"` // clock value when the run ended
	CPUBusyTicks int64 `json:"cpu_busy_ticks"`
	CPUIdleTicks int64 `json:"cpu_idle_ticks"`
	IOBusyTicks  int64 `json:"io_busy_ticks"`
	Dispatches   int64 `json:"dispatches"`
	Preemptions  int64 `json:"preemptions"`

	AvgWaiting     float64      `json:"avg_waiting"`
	AvgTurnaround  float64      `json:"avg_turnaround"`
	AvgResponse    float64      `json:"avg_response"`
	CPUUtilization float64      `json:"cpu_utilization"`
	IOUtilization  float64      `json:"io_utilization"`
	Throughput     float64      `json:"throughput"` // completed processes per tick
	Waiting        Distribution `json:"waiting"`
}

// Metrics derives per-process and aggregate metrics from the final state.
// Processes that have not terminated are omitted; averages over zero
// completed processes are 0.
func (sim *Simulator) Metrics() *Metrics {
	m := &Metrics{
		Processes:    make([]ProcessMetrics, 0, len(sim.Processes)),
		TotalTicks:   sim.Clock,
		CPUBusyTicks: sim.CPU.BusyTicks,
		CPUIdleTicks: sim.CPU.IdleTicks,
		IOBusyTicks:  sim.IO.BusyTicks,
		Dispatches:   sim.dispatches,
		Preemptions:  sim.preemptions,
	}
	var waits, turnarounds, responses []int64
	for _, p := range sim.Processes {
		pm, ok := NewProcessMetrics(p)
		if !ok {
			continue
		}
		m.Processes = append(m.Processes, pm)
		waits = append(waits, pm.Waiting)
		turnarounds = append(turnarounds, pm.Turnaround)
		responses = append(responses, pm.Response)
	}
	m.Completed = len(m.Processes)
	m.AvgWaiting = CalculateMean(waits)
	m.AvgTurnaround = CalculateMean(turnarounds)
	m.AvgResponse = CalculateMean(responses)
	m.Waiting = NewDistribution(waits)
	m.CPUUtilization = ratio(m.CPUBusyTicks, m.TotalTicks)
	m.IOUtilization = ratio(m.IOBusyTicks, m.TotalTicks)
	m.Throughput = ratio(int64(m.Completed), m.TotalTicks)
	return m
}

// NewProcessMetrics computes the metrics of a terminated process.
// Returns false if p has not terminated.
func NewProcessMetrics(p *Process) (ProcessMetrics, bool) {
	completion, done := p.CompletionTime()
	start, started := p.StartTime()
	if !done || !started {
		return ProcessMetrics{}, false
	}
	turnaround := completion - p.ArrivalTime
	return ProcessMetrics{
		Name:       p.Name,
		Arrival:    p.ArrivalTime,
		BurstCPU:   p.BurstCPU,
		Start:      start,
		Completion: completion,
		Turnaround: turnaround,
		Waiting:    turnaround - p.BurstCPU,
		Response:   start - p.ArrivalTime,
		CPUTicks:   p.CPUTicks,
		IOTicks:    p.IOTicks,
		IORequests: p.IORequests,
	}, true
}

func ratio(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
