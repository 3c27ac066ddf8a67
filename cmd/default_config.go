package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YashVerma-code/OS-Assignment/sim"
)

// defaultServerAddr is used when neither --addr nor defaults.yaml sets one.
const defaultServerAddr = ":9095"

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Simulation SimulationDefaults `yaml:"simulation"`
	Server     ServerDefaults     `yaml:"server"`
	LogLevel   string             `yaml:"log_level"`
}

// SimulationDefaults seeds sim.Config before flags are applied.
type SimulationDefaults struct {
	Policy  string `yaml:"policy"`
	Quantum int64  `yaml:"quantum"`
	Horizon int64  `yaml:"horizon"`
}

type ServerDefaults struct {
	Addr string `yaml:"addr"`
	// MaxHorizon caps every request's clock; 0 = api.DefaultMaxHorizon.
	MaxHorizon int64 `yaml:"max_horizon"`
}

// SimConfig converts the simulation section to a run configuration.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Policy:  c.Simulation.Policy,
		Quantum: c.Simulation.Quantum,
		Horizon: c.Simulation.Horizon,
	}
}

// ServerAddr returns the configured listen address or the built-in default.
func (c *Config) ServerAddr() string {
	if c.Server.Addr == "" {
		return defaultServerAddr
	}
	return c.Server.Addr
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking: typos must cause errors. A missing file is not
// an error unless required is set, so the CLI runs outside the repository.
func loadDefaultsConfig(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading defaults file: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing defaults YAML %s: %w", path, err)
	}
	if cfg.Server.MaxHorizon < 0 {
		return nil, fmt.Errorf("defaults file %s: server.max_horizon must be >= 0, got %d", path, cfg.Server.MaxHorizon)
	}
	if err := cfg.SimConfig().WithDefaults().Validate(); err != nil {
		return nil, fmt.Errorf("defaults file %s: %w", path, err)
	}
	return &cfg, nil
}
