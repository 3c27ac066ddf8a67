package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/YashVerma-code/OS-Assignment/sim"
	"github.com/YashVerma-code/OS-Assignment/sim/trace"
	"github.com/YashVerma-code/OS-Assignment/sim/workload"
)

var (
	// CLI flags shared by run, compare and submit
	workloadPath string // Workload file (.yaml, .csv or semicolon text); empty = built-in scenario
	policyName   string // Dispatch policy
	quantum      int64  // CPU ticks per quantum
	horizon      int64  // Safety horizon in ticks (0 = unbounded)
	logLevel     string // Log verbosity level
	outputFormat string // table or json
	defaultsPath string // Path to defaults.yaml

	// run-only flags
	traceLevel string // Trace verbosity
	configPath string // Run bundle YAML
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sched-sim",
	Short: "Tick-driven CPU and I/O scheduling simulator",
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a workload under one dispatch policy",
	Run: func(cmd *cobra.Command, args []string) {
		defaults := setupDefaults(cmd)

		spec, descs, err := loadWorkload(workloadPath)
		if err != nil {
			logrus.Fatalf("Failed to load workload: %v", err)
		}
		cfg, err := resolveRunConfig(cmd, defaults, spec)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Running %d processes under %s (quantum %d)", len(descs), cfg.Policy, cfg.Quantum)
		res, err := sim.Simulate(cfg, descs)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := writeResult(os.Stdout, res, outputFormat); err != nil {
			logrus.Fatalf("Failed to write result: %v", err)
		}
		if cfg.TraceLevel == string(trace.TraceLevelEvents) {
			s := trace.Summarize(&trace.SimulationTrace{Events: res.Trace})
			logrus.Infof("Trace: %d events, %d dispatches, %d I/O blocks, %d idle CPU ticks",
				s.TotalEvents, s.Dispatches, s.IOBlocks, s.IdleCPUTicks)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupDefaults loads defaults.yaml and sets the log level. --log wins over
// the file's log_level.
func setupDefaults(cmd *cobra.Command) *Config {
	defaults, err := loadDefaultsConfig(defaultsPath, cmd.Flags().Changed("defaults"))
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	level := logLevel
	if !cmd.Flags().Changed("log") && defaults.LogLevel != "" {
		level = defaults.LogLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", level)
	}
	logrus.SetLevel(parsed)
	if !validOutputs[outputFormat] {
		logrus.Fatalf("Invalid --output %q; valid: table, json", outputFormat)
	}
	return defaults
}

// loadWorkload loads the workload file, or the built-in scenario when path is empty.
func loadWorkload(path string) (*workload.WorkloadSpec, []sim.Descriptor, error) {
	if path == "" {
		logrus.Info("No --workload given; using the built-in scenario")
		return nil, workload.DefaultScenario(), nil
	}
	return workload.LoadProcessFile(path)
}

// resolveConfig layers the configuration sources, lowest precedence first:
// defaults.yaml, the workload file's policy/quantum, then explicitly set flags.
func resolveConfig(cmd *cobra.Command, defaults *Config, spec *workload.WorkloadSpec) sim.Config {
	cfg := defaults.SimConfig()
	flags := cmd.Flags()
	if flags.Changed("policy") {
		cfg.Policy = policyName
	}
	if flags.Changed("quantum") {
		cfg.Quantum = quantum
	}
	if flags.Changed("horizon") {
		cfg.Horizon = horizon
	}
	if spec != nil {
		cfg = spec.ApplyTo(cfg, flags.Changed("policy"), flags.Changed("quantum"))
	}
	return cfg
}

// resolveRunConfig adds the run-only sources: the --config bundle sits above
// the workload file, and --trace-level above everything.
func resolveRunConfig(cmd *cobra.Command, defaults *Config, spec *workload.WorkloadSpec) (sim.Config, error) {
	cfg := resolveConfig(cmd, defaults, spec)
	flags := cmd.Flags()
	if configPath != "" {
		bundle, err := sim.LoadRunBundle(configPath)
		if err != nil {
			return cfg, err
		}
		if err := bundle.Validate(); err != nil {
			return cfg, err
		}
		// Flags stay authoritative: reapply them over the bundle.
		cfg = bundle.Apply(cfg)
		if flags.Changed("policy") {
			cfg.Policy = policyName
		}
		if flags.Changed("quantum") {
			cfg.Quantum = quantum
		}
		if flags.Changed("horizon") {
			cfg.Horizon = horizon
		}
	}
	if flags.Changed("trace-level") || cfg.TraceLevel == "" {
		cfg.TraceLevel = traceLevel
	}
	cfg = cfg.WithDefaults()
	return cfg, cfg.Validate()
}

// addSimulationFlags registers the flags shared by run, compare and submit.
func addSimulationFlags(c *cobra.Command) {
	c.Flags().StringVar(&workloadPath, "workload", "", "Workload file (.yaml, .csv or name;arrival;cpu;io_rate;io_burst text); default is the built-in scenario")
	c.Flags().StringVar(&policyName, "policy", sim.DefaultPolicy, "Dispatch policy (vrr, rr, fcfs, sjf, srtf)")
	c.Flags().Int64Var(&quantum, "quantum", sim.DefaultQuantum, "CPU ticks per quantum")
	c.Flags().Int64Var(&horizon, "horizon", 0, "Abort the run after this many ticks (0 = unbounded)")
	c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().StringVar(&outputFormat, "output", outputTable, "Output format (table, json)")
	c.Flags().StringVar(&defaultsPath, "defaults", "defaults.yaml", "Path to the defaults file")
}

// init sets up CLI flags and subcommands
func init() {
	addSimulationFlags(runCmd)
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelNone), "Trace verbosity (none, events)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Run configuration YAML (policy, quantum, horizon, trace_level)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
