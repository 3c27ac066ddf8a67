package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/YashVerma-code/OS-Assignment/sim"
)

var comparePolicies []string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run one workload under several dispatch policies",
	Long:  "Run the same workload under each policy (all of them unless --policies is given) and print one row per policy.",
	Run: func(cmd *cobra.Command, args []string) {
		defaults := setupDefaults(cmd)

		spec, descs, err := loadWorkload(workloadPath)
		if err != nil {
			logrus.Fatalf("Failed to load workload: %v", err)
		}
		for _, p := range comparePolicies {
			if p == "" || !sim.IsValidPolicy(p) {
				logrus.Fatalf("Unknown policy %q; valid: %v", p, sim.PolicyNames())
			}
		}
		cfg := resolveConfig(cmd, defaults, spec).WithDefaults()

		results, err := sim.Compare(cfg, descs, comparePolicies)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
		if err := writeResults(os.Stdout, results, outputFormat); err != nil {
			logrus.Fatalf("Failed to write results: %v", err)
		}
	},
}

func init() {
	addSimulationFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", nil, "Comma-separated policies to compare (default: all)")

	rootCmd.AddCommand(compareCmd)
}
