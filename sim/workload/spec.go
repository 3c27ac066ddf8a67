package workload

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/YashVerma-code/OS-Assignment/sim"
)

// CurrentVersion is the workload spec version written by this package.
const CurrentVersion = "1"

var validVersions = map[string]bool{"": true, "1": true}

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadWorkloadSpec(path). Exactly one of Processes or
// Generator must be set.
type WorkloadSpec struct {
	Version   string           `yaml:"version"`
	Policy    string           `yaml:"policy,omitempty"`
	Quantum   int64            `yaml:"quantum,omitempty"`
	Processes []sim.Descriptor `yaml:"processes,omitempty"`
	Generator *GeneratorSpec   `yaml:"generator,omitempty"`
}

// LoadWorkloadSpec reads and parses a YAML workload file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	return ParseWorkloadSpec(bytes.NewReader(data))
}

// ParseWorkloadSpec strictly decodes a YAML workload.
func ParseWorkloadSpec(r io.Reader) (*WorkloadSpec, error) {
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	if spec.Version == "" {
		spec.Version = CurrentVersion
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unsupported workload version %q; valid: %s", s.Version, CurrentVersion)
	}
	if !sim.IsValidPolicy(s.Policy) {
		return fmt.Errorf("unknown policy %q", s.Policy)
	}
	if s.Quantum < 0 {
		return fmt.Errorf("quantum must be positive, got %d", s.Quantum)
	}
	switch {
	case len(s.Processes) > 0 && s.Generator != nil:
		return fmt.Errorf("processes and generator are mutually exclusive")
	case len(s.Processes) > 0:
		return sim.ValidateDescriptors(s.Processes)
	case s.Generator != nil:
		return s.Generator.Validate()
	default:
		return fmt.Errorf("at least one process or a generator is required")
	}
}

// Descriptors returns the process list, generating it if the spec has a generator.
func (s *WorkloadSpec) Descriptors() ([]sim.Descriptor, error) {
	if s.Generator != nil {
		return GenerateDescriptors(s.Generator)
	}
	return s.Processes, nil
}

// ApplyTo overlays the spec's policy and quantum onto cfg. Fields set on cfg
// by the caller win; a conflicting spec value is reported at warn level.
func (s *WorkloadSpec) ApplyTo(cfg sim.Config, policySet, quantumSet bool) sim.Config {
	if s.Policy != "" {
		if policySet && cfg.Policy != s.Policy {
			logrus.Warnf("workload policy %q overridden by --policy %q", s.Policy, cfg.Policy)
		} else if !policySet {
			cfg.Policy = s.Policy
		}
	}
	if s.Quantum != 0 {
		if quantumSet && cfg.Quantum != s.Quantum {
			logrus.Warnf("workload quantum %d overridden by --quantum %d", s.Quantum, cfg.Quantum)
		} else if !quantumSet {
			cfg.Quantum = s.Quantum
		}
	}
	return cfg
}

// WriteYAML encodes the spec as YAML.
func (s *WorkloadSpec) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding workload spec: %w", err)
	}
	return enc.Close()
}
