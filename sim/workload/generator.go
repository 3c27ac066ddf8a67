package workload

import (
	"fmt"

	"github.com/YashVerma-code/OS-Assignment/sim"
)

// GeneratorSpec describes a reproducible random workload.
type GeneratorSpec struct {
	Seed         int64    `yaml:"seed"`
	Count        int      `yaml:"count"`
	NamePrefix   string   `yaml:"name_prefix,omitempty"` // default "P"
	InterArrival DistSpec `yaml:"inter_arrival"`
	CPUBurst     DistSpec `yaml:"cpu_burst"`
	IOBurst      DistSpec `yaml:"io_burst"`
	IORate       DistSpec `yaml:"io_rate"`
}

// DefaultGeneratorSpec returns a generator producing a mix of CPU-bound and
// I/O-bound processes at the scale of the built-in scenario.
func DefaultGeneratorSpec(seed int64, count int) *GeneratorSpec {
	return &GeneratorSpec{
		Seed:         seed,
		Count:        count,
		NamePrefix:   "P",
		InterArrival: DistSpec{Type: "uniform", Params: map[string]float64{"min": 0, "max": 8}},
		CPUBurst:     DistSpec{Type: "uniform", Params: map[string]float64{"min": 5, "max": 50}},
		IOBurst:      DistSpec{Type: "uniform", Params: map[string]float64{"min": 1, "max": 4}},
		IORate:       DistSpec{Type: "uniform", Params: map[string]float64{"min": 0, "max": 8}},
	}
}

// Validate checks the count and every distribution.
func (g *GeneratorSpec) Validate() error {
	_, err := g.samplers()
	return err
}

type samplerSet struct {
	interArrival, cpuBurst, ioBurst, ioRate IntSampler
}

func (g *GeneratorSpec) samplers() (*samplerSet, error) {
	if g.Count <= 0 {
		return nil, fmt.Errorf("generator count must be positive, got %d", g.Count)
	}
	var set samplerSet
	var err error
	if set.interArrival, err = NewSampler(g.InterArrival, 0); err != nil {
		return nil, fmt.Errorf("inter_arrival: %w", err)
	}
	if set.cpuBurst, err = NewSampler(g.CPUBurst, 1); err != nil {
		return nil, fmt.Errorf("cpu_burst: %w", err)
	}
	if set.ioBurst, err = NewSampler(g.IOBurst, 0); err != nil {
		return nil, fmt.Errorf("io_burst: %w", err)
	}
	if set.ioRate, err = NewSampler(g.IORate, 0); err != nil {
		return nil, fmt.Errorf("io_rate: %w", err)
	}
	return &set, nil
}

// GenerateDescriptors draws g.Count processes. The first arrives at tick 0;
// each later one arrives an inter-arrival gap after its predecessor.
// Arrivals, CPU bursts and I/O parameters use separate RNG streams.
func GenerateDescriptors(g *GeneratorSpec) ([]sim.Descriptor, error) {
	set, err := g.samplers()
	if err != nil {
		return nil, err
	}
	prefix := g.NamePrefix
	if prefix == "" {
		prefix = "P"
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(g.Seed))
	arrivals := rng.ForSubsystem(sim.SubsystemArrivals)
	bursts := rng.ForSubsystem(sim.SubsystemCPUBursts)
	ioRNG := rng.ForSubsystem(sim.SubsystemIO)

	descs := make([]sim.Descriptor, 0, g.Count)
	var arrival int64
	for i := 0; i < g.Count; i++ {
		if i > 0 {
			arrival += set.interArrival.Sample(arrivals)
		}
		descs = append(descs, sim.Descriptor{
			Name:        fmt.Sprintf("%s%d", prefix, i),
			ArrivalTime: arrival,
			BurstCPU:    set.cpuBurst.Sample(bursts),
			BurstIO:     set.ioBurst.Sample(ioRNG),
			IORate:      set.ioRate.Sample(ioRNG),
		})
	}
	return descs, nil
}
