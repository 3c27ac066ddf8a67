package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YashVerma-code/OS-Assignment/sim/trace"
)

// RunBundle is a YAML file holding the configuration of a run, loadable with
// `run --config`. Nil pointer fields mean "not set in YAML" and leave the
// caller's values untouched.
type RunBundle struct {
	Policy     string `yaml:"policy"`
	Quantum    *int64 `yaml:"quantum"`
	Horizon    *int64 `yaml:"horizon"`
	TraceLevel string `yaml:"trace_level"`
}

// LoadRunBundle reads and strictly parses a run configuration file.
func LoadRunBundle(path string) (*RunBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var bundle RunBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &bundle, nil
}

// Validate checks that the policy name and parameter ranges in the bundle are valid.
func (b *RunBundle) Validate() error {
	if !IsValidPolicy(b.Policy) {
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, b.Policy)
	}
	if b.Quantum != nil && *b.Quantum <= 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidConfig, *b.Quantum)
	}
	if b.Horizon != nil && *b.Horizon < 0 {
		return fmt.Errorf("%w: horizon must be >= 0, got %d", ErrInvalidConfig, *b.Horizon)
	}
	if !trace.IsValidTraceLevel(b.TraceLevel) {
		return fmt.Errorf("%w: unknown trace level %q", ErrInvalidConfig, b.TraceLevel)
	}
	return nil
}

// Apply overlays the fields set in the bundle onto cfg.
func (b *RunBundle) Apply(cfg Config) Config {
	if b.Policy != "" {
		cfg.Policy = b.Policy
	}
	if b.Quantum != nil {
		cfg.Quantum = *b.Quantum
	}
	if b.Horizon != nil {
		cfg.Horizon = *b.Horizon
	}
	if b.TraceLevel != "" {
		cfg.TraceLevel = b.TraceLevel
	}
	return cfg
}
