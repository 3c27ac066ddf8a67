package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents   int
	Arrivals      int
	Dispatches    int
	IOBlocks      int
	IOCompletions int
	Completions   int
	IdleCPUTicks  int
	// process name → number of times it was placed on the CPU
	DispatchDistribution map[string]int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	for _, ev := range st.Events {
		switch ev.Kind {
		case KindArrive:
			summary.Arrivals++
		case KindDispatch:
			summary.Dispatches++
			summary.DispatchDistribution[ev.Process]++
		case KindBlock:
			summary.IOBlocks++
		case KindIODone:
			summary.IOCompletions++
		case KindComplete:
			summary.Completions++
		case KindIdle:
			summary.IdleCPUTicks++
		}
	}
	return summary
}
