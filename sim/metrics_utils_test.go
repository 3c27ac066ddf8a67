package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDistribution_Empty_ZeroValue(t *testing.T) {
	assert.Equal(t, Distribution{}, NewDistribution([]int64{}))
}

func TestNewDistribution_Values(t *testing.T) {
	// GIVEN unsorted waiting times
	d := NewDistribution([]int64{56, 20, 71, 47})

	// THEN summary statistics come from the sorted values
	assert.Equal(t, 4, d.Count)
	assert.Equal(t, 48.5, d.Mean)
	assert.Equal(t, 20.0, d.Min)
	assert.Equal(t, 71.0, d.Max)
	assert.InDelta(t, 51.5, d.P50, 1e-9)
}

func TestCalculatePercentile_Interpolates(t *testing.T) {
	data := []float64{10, 20, 30, 40, 50}
	assert.Equal(t, 30.0, CalculatePercentile(data, 50))
	assert.InDelta(t, 48.0, CalculatePercentile(data, 95), 1e-9)
	assert.Equal(t, 0.0, CalculatePercentile([]float64{}, 50))
	assert.Equal(t, 7.0, CalculatePercentile([]int{7}, 99))
}

func TestCalculateMean(t *testing.T) {
	assert.Equal(t, 0.0, CalculateMean([]int{}))
	assert.Equal(t, 2.5, CalculateMean([]int{1, 2, 3, 4}))
}
