package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YashVerma-code/OS-Assignment/sim"
	"github.com/YashVerma-code/OS-Assignment/sim/workload"
)

func setGenerateFlags(seed int64, count int, policy string, expand bool) {
	generateSeed, generateCount, generatePrefix = seed, count, "J"
	generatePolicy, generateQuantum, generateExpand = policy, 0, expand
}

func TestBuildGeneratedSpec_Expanded(t *testing.T) {
	// GIVEN --expand with a fixed seed
	setGenerateFlags(11, 6, "rr", true)

	// WHEN the spec is built twice
	first, err := buildGeneratedSpec()
	require.NoError(t, err)
	second, err := buildGeneratedSpec()
	require.NoError(t, err)

	// THEN the process list is materialized, valid and reproducible
	assert.Nil(t, first.Generator)
	require.Len(t, first.Processes, 6)
	assert.Equal(t, "J0", first.Processes[0].Name)
	assert.NoError(t, sim.ValidateDescriptors(first.Processes))
	assert.Equal(t, first.Processes, second.Processes)
}

func TestBuildGeneratedSpec_GeneratorBlock_RoundTrips(t *testing.T) {
	// GIVEN the default (unexpanded) output
	setGenerateFlags(3, 5, "", false)
	spec, err := buildGeneratedSpec()
	require.NoError(t, err)
	require.NotNil(t, spec.Generator)

	// WHEN written and parsed back
	var buf bytes.Buffer
	require.NoError(t, spec.WriteYAML(&buf))
	parsed, err := workload.ParseWorkloadSpec(&buf)
	require.NoError(t, err)
	require.NoError(t, parsed.Validate())

	// THEN both sample the same processes
	want, err := spec.Descriptors()
	require.NoError(t, err)
	got, err := parsed.Descriptors()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBuildGeneratedSpec_Invalid(t *testing.T) {
	setGenerateFlags(1, 0, "", true)
	_, err := buildGeneratedSpec()
	assert.Error(t, err)

	setGenerateFlags(1, 4, "lottery", false)
	_, err = buildGeneratedSpec()
	assert.Error(t, err)
}
