package workload

import "github.com/YashVerma-code/OS-Assignment/sim"

// DefaultScenario returns the built-in four-process workload used when no
// workload file is given.
func DefaultScenario() []sim.Descriptor {
	return []sim.Descriptor{
		{Name: "P0", ArrivalTime: 0, BurstCPU: 24, BurstIO: 2, IORate: 5},
		{Name: "P1", ArrivalTime: 3, BurstCPU: 17, BurstIO: 3, IORate: 6},
		{Name: "P2", ArrivalTime: 8, BurstCPU: 50, BurstIO: 2, IORate: 5},
		{Name: "P3", ArrivalTime: 15, BurstCPU: 10, BurstIO: 3, IORate: 6},
	}
}
