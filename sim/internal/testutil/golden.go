// Package testutil provides shared test infrastructure for the scheduling
// simulator: the golden schedule dataset and assertion helpers used across
// sim/ and its sub-packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden_schedules.json.
type GoldenDataset struct {
	Scenario []GoldenProcess  `json:"scenario"`
	Tests    []GoldenTestCase `json:"tests"`
}

// GoldenProcess is one input process of the golden scenario.
type GoldenProcess struct {
	Name     string `json:"name"`
	Arrival  int64  `json:"arrival"`
	BurstCPU int64  `json:"cpu_burst"`
	BurstIO  int64  `json:"io_burst"`
	IORate   int64  `json:"io_rate"`
}

// GoldenTestCase is the pinned outcome of the scenario under one policy.
type GoldenTestCase struct {
	Policy       string          `json:"policy"`
	Quantum      int64           `json:"quantum"`
	TotalTicks   int64           `json:"total_ticks"`
	AvgWaiting   float64         `json:"avg_waiting"`
	Dispatches   int64           `json:"dispatches"`
	IdleCPUTicks int64           `json:"idle_cpu_ticks"`
	Processes    []GoldenMetrics `json:"processes"`
	// Trace lines in rendered form: "tick\tdevice\t\tevent".
	Trace []string `json:"trace"`
}

// GoldenMetrics is the expected terminal record of one process.
type GoldenMetrics struct {
	Name       string `json:"name"`
	Start      int64  `json:"start"`
	Completion int64  `json:"completion"`
	Turnaround int64  `json:"turnaround"`
	Waiting    int64  `json:"waiting"`
	Response   int64  `json:"response"`
	CPUTicks   int64  `json:"cpu_ticks"`
	IOTicks    int64  `json:"io_ticks"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_schedules.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// Case returns the test case for policy, failing the test if absent.
func (d *GoldenDataset) Case(t *testing.T, policy string) GoldenTestCase {
	t.Helper()
	for _, tc := range d.Tests {
		if tc.Policy == policy {
			return tc
		}
	}
	t.Fatalf("no golden case for policy %q", policy)
	return GoldenTestCase{}
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
