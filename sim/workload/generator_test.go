package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YashVerma-code/OS-Assignment/sim"
)

func TestGenerateDescriptors_Deterministic(t *testing.T) {
	a, err := GenerateDescriptors(DefaultGeneratorSpec(42, 20))
	require.NoError(t, err)
	b, err := GenerateDescriptors(DefaultGeneratorSpec(42, 20))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := GenerateDescriptors(DefaultGeneratorSpec(43, 20))
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds should produce different workloads")
}

func TestGenerateDescriptors_RespectsRanges(t *testing.T) {
	// GIVEN the default generator
	g := DefaultGeneratorSpec(7, 50)

	// WHEN generating
	descs, err := GenerateDescriptors(g)
	require.NoError(t, err)

	// THEN every value is in range, arrivals are non-decreasing and the set is simulatable
	require.Len(t, descs, 50)
	assert.Equal(t, int64(0), descs[0].ArrivalTime)
	for i, d := range descs {
		assert.GreaterOrEqual(t, d.BurstCPU, int64(5))
		assert.LessOrEqual(t, d.BurstCPU, int64(50))
		assert.GreaterOrEqual(t, d.BurstIO, int64(1))
		assert.LessOrEqual(t, d.BurstIO, int64(4))
		assert.GreaterOrEqual(t, d.IORate, int64(0))
		assert.LessOrEqual(t, d.IORate, int64(8))
		if i > 0 {
			gap := d.ArrivalTime - descs[i-1].ArrivalTime
			assert.GreaterOrEqual(t, gap, int64(0))
			assert.LessOrEqual(t, gap, int64(8))
		}
	}
	assert.NoError(t, sim.ValidateDescriptors(descs))
}

func TestGenerateDescriptors_BurstStreamIndependentOfArrivals(t *testing.T) {
	// GIVEN two generators differing only in the inter-arrival distribution
	g1 := DefaultGeneratorSpec(5, 10)
	g2 := DefaultGeneratorSpec(5, 10)
	g2.InterArrival = DistSpec{Type: "exponential", Params: map[string]float64{"mean": 3}}

	d1, err := GenerateDescriptors(g1)
	require.NoError(t, err)
	d2, err := GenerateDescriptors(g2)
	require.NoError(t, err)

	// THEN CPU bursts are identical
	for i := range d1 {
		assert.Equal(t, d1[i].BurstCPU, d2[i].BurstCPU, "process %d", i)
	}
}

func TestGeneratorSpec_Validate(t *testing.T) {
	g := DefaultGeneratorSpec(1, 0)
	assert.Error(t, g.Validate(), "zero count")

	g = DefaultGeneratorSpec(1, 3)
	g.CPUBurst = DistSpec{Type: "uniform", Params: map[string]float64{"min": 0, "max": 4}}
	assert.Error(t, g.Validate(), "cpu burst range must start at 1")

	g = DefaultGeneratorSpec(1, 3)
	g.IORate = DistSpec{Type: "gaussian"}
	assert.Error(t, g.Validate(), "unknown distribution")
}

func TestNewSampler(t *testing.T) {
	tests := []struct {
		name    string
		spec    DistSpec
		floor   int64
		wantErr bool
	}{
		{"constant", DistSpec{Type: "constant", Params: map[string]float64{"value": 3}}, 0, false},
		{"constant below floor", DistSpec{Type: "constant", Params: map[string]float64{"value": 0}}, 1, true},
		{"uniform", DistSpec{Type: "uniform", Params: map[string]float64{"min": 1, "max": 2}}, 1, false},
		{"uniform inverted", DistSpec{Type: "uniform", Params: map[string]float64{"min": 5, "max": 2}}, 0, true},
		{"uniform missing max", DistSpec{Type: "uniform", Params: map[string]float64{"min": 1}}, 0, true},
		{"exponential", DistSpec{Type: "exponential", Params: map[string]float64{"mean": 2}}, 1, false},
		{"exponential zero mean", DistSpec{Type: "exponential", Params: map[string]float64{"mean": 0}}, 0, true},
		{"unknown", DistSpec{Type: "pareto"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSampler(tt.spec, tt.floor)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExponentialSampler_NeverBelowFloor(t *testing.T) {
	s, err := NewSampler(DistSpec{Type: "exponential", Params: map[string]float64{"mean": 0.2}}, 1)
	require.NoError(t, err)
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(3)).ForSubsystem(sim.SubsystemCPUBursts)
	for i := 0; i < 200; i++ {
		assert.GreaterOrEqual(t, s.Sample(rng), int64(1))
	}
}

func TestDefaultScenario_IsValid(t *testing.T) {
	descs := DefaultScenario()
	require.Len(t, descs, 4)
	assert.NoError(t, sim.ValidateDescriptors(descs))
}
