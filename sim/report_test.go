package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMetricsTable_ContainsRowsAndAverages(t *testing.T) {
	res, err := Simulate(Config{Policy: "fcfs"}, []Descriptor{
		{Name: "A", BurstCPU: 3},
		{Name: "B", BurstCPU: 2},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteMetricsTable(&buf, res)
	out := buf.String()

	// A waits 0, B waits 3 → average 1.50
	assert.Contains(t, out, "Policy fcfs, quantum 5")
	assert.Contains(t, out, "Average waiting time: 1.50")
	assert.Contains(t, out, "| A ")
	assert.Contains(t, out, "| B ")
}

func TestWriteComparisonTable_OneRowPerPolicy(t *testing.T) {
	results, err := Compare(Config{}, []Descriptor{{Name: "A", BurstCPU: 4}}, []string{"vrr", "sjf"})
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteComparisonTable(&buf, results)
	out := buf.String()

	assert.Contains(t, out, "| vrr ")
	assert.Contains(t, out, "| sjf ")
}
