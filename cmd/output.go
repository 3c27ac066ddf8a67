package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/YashVerma-code/OS-Assignment/sim"
	"github.com/YashVerma-code/OS-Assignment/sim/trace"
	"github.com/YashVerma-code/OS-Assignment/sim/workload"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
)

var validOutputs = map[string]bool{outputTable: true, outputJSON: true}

// writeResult prints one run: the trace (if recorded) followed by the
// metrics table, or the whole result as JSON.
func writeResult(w io.Writer, res *sim.Result, format string) error {
	if format == outputJSON {
		return writeJSON(w, res)
	}
	if len(res.Trace) > 0 {
		if err := trace.Render(w, res.Trace); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w)
	}
	sim.WriteMetricsTable(w, res)
	return nil
}

// writeResults prints a policy comparison.
func writeResults(w io.Writer, results []*sim.Result, format string) error {
	if format == outputJSON {
		return writeJSON(w, results)
	}
	sim.WriteComparisonTable(w, results)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeSpecToStdout encodes a workload spec as YAML on stdout for piping.
func writeSpecToStdout(spec *workload.WorkloadSpec) {
	if err := spec.WriteYAML(os.Stdout); err != nil {
		logrus.Fatalf("Failed to write workload: %v", err)
	}
}
