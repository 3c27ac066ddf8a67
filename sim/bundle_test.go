package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRunBundle_ValidYAML(t *testing.T) {
	yaml := `
policy: srtf
quantum: 3
horizon: 500
trace_level: events
`
	path := writeTempYAML(t, yaml)
	bundle, err := LoadRunBundle(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bundle.Policy != "srtf" {
		t.Errorf("expected policy 'srtf', got %q", bundle.Policy)
	}
	if bundle.Quantum == nil || *bundle.Quantum != 3 {
		t.Errorf("expected quantum 3, got %v", bundle.Quantum)
	}
	if bundle.Horizon == nil || *bundle.Horizon != 500 {
		t.Errorf("expected horizon 500, got %v", bundle.Horizon)
	}
	if bundle.TraceLevel != "events" {
		t.Errorf("expected trace level 'events', got %q", bundle.TraceLevel)
	}
}

func TestLoadRunBundle_UnknownField_Rejected(t *testing.T) {
	path := writeTempYAML(t, "policy: rr\nquantom: 4\n")
	_, err := LoadRunBundle(path)
	assert.Error(t, err, "typo in field name must fail strict parsing")
}

func TestLoadRunBundle_MissingFile(t *testing.T) {
	_, err := LoadRunBundle("/nonexistent/run.yaml")
	assert.Error(t, err)
}

func TestRunBundle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bundle  RunBundle
		wantErr bool
	}{
		{"empty", RunBundle{}, false},
		{"valid", RunBundle{Policy: "rr", Quantum: int64Ptr(2)}, false},
		{"unknown policy", RunBundle{Policy: "lottery"}, true},
		{"zero quantum", RunBundle{Quantum: int64Ptr(0)}, true},
		{"negative horizon", RunBundle{Horizon: int64Ptr(-1)}, true},
		{"bad trace level", RunBundle{TraceLevel: "verbose"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bundle.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunBundle_Apply_OnlyOverridesSetFields(t *testing.T) {
	// GIVEN a bundle that sets only the quantum
	b := RunBundle{Quantum: int64Ptr(8)}
	base := Config{Policy: "sjf", Quantum: 5, Horizon: 100}

	// WHEN applied
	got := b.Apply(base)

	// THEN unset fields keep the caller's values
	assert.Equal(t, Config{Policy: "sjf", Quantum: 8, Horizon: 100}, got)
}
