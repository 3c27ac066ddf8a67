package cmd

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/YashVerma-code/OS-Assignment/api"
)

var (
	submitServer  string
	submitCompare bool
	submitTrace   bool
	submitTimeout time.Duration
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Run a workload on a remote simulation server",
	Long:  "Send a workload to a server started with `serve` and print the result the same way `run` does.",
	Run: func(cmd *cobra.Command, args []string) {
		defaults := setupDefaults(cmd)

		spec, descs, err := loadWorkload(workloadPath)
		if err != nil {
			logrus.Fatalf("Failed to load workload: %v", err)
		}
		cfg := resolveConfig(cmd, defaults, spec).WithDefaults()
		req := &api.SimulateRequest{
			Quantum:   cfg.Quantum,
			Horizon:   cfg.Horizon,
			Trace:     submitTrace,
			Processes: descs,
		}

		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		client := api.NewClient(submitServer)

		if submitCompare {
			out, err := client.Compare(ctx, req)
			if err != nil {
				logrus.Fatalf("Remote comparison failed: %v", err)
			}
			if err := writeResults(os.Stdout, out.Results, outputFormat); err != nil {
				logrus.Fatalf("Failed to write results: %v", err)
			}
			return
		}
		res, err := client.Simulate(ctx, cfg.Policy, req)
		if err != nil {
			logrus.Fatalf("Remote simulation failed: %v", err)
		}
		if err := writeResult(os.Stdout, res, outputFormat); err != nil {
			logrus.Fatalf("Failed to write result: %v", err)
		}
	},
}

func init() {
	addSimulationFlags(submitCmd)
	submitCmd.Flags().StringVar(&submitServer, "server", "http://localhost"+defaultServerAddr, "Base URL of the simulation server")
	submitCmd.Flags().BoolVar(&submitCompare, "all", false, "Compare every policy instead of running --policy")
	submitCmd.Flags().BoolVar(&submitTrace, "trace", false, "Ask the server for the event trace")
	submitCmd.Flags().DurationVar(&submitTimeout, "timeout", 30*time.Second, "Request timeout")

	rootCmd.AddCommand(submitCmd)
}
