package sim

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteMetricsTable renders one row per completed process with the averages
// in the footer.
func WriteMetricsTable(w io.Writer, res *Result) {
	m := res.Metrics
	_, _ = fmt.Fprintf(w, "Policy %s, quantum %d\n", res.Policy, res.Quantum)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Start", "Completion", "Turnaround", "Waiting", "Response"})
	rows := make([][]string, 0, len(m.Processes))
	for _, p := range m.Processes {
		rows = append(rows, []string{
			p.Name,
			strconv.FormatInt(p.Arrival, 10),
			strconv.FormatInt(p.BurstCPU, 10),
			strconv.FormatInt(p.Start, 10),
			strconv.FormatInt(p.Completion, 10),
			strconv.FormatInt(p.Turnaround, 10),
			strconv.FormatInt(p.Waiting, 10),
			strconv.FormatInt(p.Response, 10),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", m.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", m.AvgResponse)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Average waiting time: %.2f\n", m.AvgWaiting)
	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%%  I/O utilization: %.2f%%  Throughput: %.4f/tick\n",
		100*m.CPUUtilization, 100*m.IOUtilization, m.Throughput)
}

// WriteComparisonTable renders one row per policy.
func WriteComparisonTable(w io.Writer, results []*Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Quantum", "Ticks", "Avg Waiting", "Avg Turnaround", "Avg Response", "CPU Util", "Dispatches"})
	for _, res := range results {
		m := res.Metrics
		table.Append([]string{
			res.Policy,
			strconv.FormatInt(res.Quantum, 10),
			strconv.FormatInt(m.TotalTicks, 10),
			fmt.Sprintf("%.2f", m.AvgWaiting),
			fmt.Sprintf("%.2f", m.AvgTurnaround),
			fmt.Sprintf("%.2f", m.AvgResponse),
			fmt.Sprintf("%.2f%%", 100*m.CPUUtilization),
			strconv.FormatInt(m.Dispatches, 10),
		})
	}
	table.Render()
}
