package sim

import (
	"fmt"

	"github.com/YashVerma-code/OS-Assignment/sim/trace"
)

const (
	// DefaultQuantum is the quantum length used when Config.Quantum is 0.
	DefaultQuantum int64 = 5
	// DefaultPolicy is the dispatch policy used when Config.Policy is empty.
	DefaultPolicy = "vrr"
)

// Config groups the tunables of one simulation run.
type Config struct {
	Policy  string `yaml:"policy" json:"policy"`
	Quantum int64  `yaml:"quantum" json:"quantum"` // CPU ticks per quantum (0 = DefaultQuantum)
	// Horizon is the last tick simulated; the run aborts with
	// ErrHorizonExceeded when the clock passes it with processes still
	// unterminated. 0 = unbounded.
	Horizon    int64  `yaml:"horizon" json:"horizon"`
	TraceLevel string `yaml:"trace_level" json:"trace_level"` // "none" (default) or "events"
}

// WithDefaults returns a copy with zero-valued fields replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.Policy == "" {
		c.Policy = DefaultPolicy
	}
	if c.Quantum == 0 {
		c.Quantum = DefaultQuantum
	}
	if c.TraceLevel == "" {
		c.TraceLevel = string(trace.TraceLevelNone)
	}
	return c
}

// Validate checks policy names and parameter ranges.
func (c Config) Validate() error {
	if !IsValidPolicy(c.Policy) {
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, c.Policy)
	}
	if c.Quantum < 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidConfig, c.Quantum)
	}
	if c.Horizon < 0 {
		return fmt.Errorf("%w: horizon must be >= 0, got %d", ErrInvalidConfig, c.Horizon)
	}
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		return fmt.Errorf("%w: unknown trace level %q", ErrInvalidConfig, c.TraceLevel)
	}
	return nil
}
