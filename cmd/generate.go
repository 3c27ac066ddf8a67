package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/YashVerma-code/OS-Assignment/sim/workload"
)

var (
	generateSeed    int64
	generateCount   int
	generatePrefix  string
	generatePolicy  string
	generateQuantum int64
	generateExpand  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random workload as YAML",
	Long:  "Generate a reproducible random workload. Output is a WorkloadSpec written to stdout for piping into run --workload.",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := buildGeneratedSpec()
		if err != nil {
			logrus.Fatalf("Generate failed: %v", err)
		}
		writeSpecToStdout(spec)
	},
}

// buildGeneratedSpec assembles the spec from the generate flags. With
// --expand the processes are sampled now; otherwise the generator block is
// written and sampled at load time.
func buildGeneratedSpec() (*workload.WorkloadSpec, error) {
	gen := workload.DefaultGeneratorSpec(generateSeed, generateCount)
	gen.NamePrefix = generatePrefix
	spec := &workload.WorkloadSpec{
		Version:   workload.CurrentVersion,
		Policy:    generatePolicy,
		Quantum:   generateQuantum,
		Generator: gen,
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if generateExpand {
		descs, err := workload.GenerateDescriptors(gen)
		if err != nil {
			return nil, err
		}
		spec.Generator = nil
		spec.Processes = descs
	}
	return spec, nil
}

func init() {
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 42, "Seed for the workload generator")
	generateCmd.Flags().IntVar(&generateCount, "count", 8, "Number of processes")
	generateCmd.Flags().StringVar(&generatePrefix, "prefix", "P", "Process name prefix")
	generateCmd.Flags().StringVar(&generatePolicy, "policy", "", "Policy to record in the workload (empty leaves it to the runner)")
	generateCmd.Flags().Int64Var(&generateQuantum, "quantum", 0, "Quantum to record in the workload (0 leaves it to the runner)")
	generateCmd.Flags().BoolVar(&generateExpand, "expand", false, "Write the sampled process list instead of the generator block")

	rootCmd.AddCommand(generateCmd)
}
