package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/YashVerma-code/OS-Assignment/sim"
)

// ParseText reads the semicolon-separated process format, one process per
// line with no header:
//
//	name;arrival;cpu_burst;io_rate;io_burst
//
// Note the I/O rate (CPU ticks between requests) precedes the I/O burst.
// Blank lines and lines starting with '#' are skipped.
func ParseText(r io.Reader) ([]sim.Descriptor, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.Comment = '#'
	reader.FieldsPerRecord = 5
	reader.TrimLeadingSpace = true

	var descs []sim.Descriptor
	for n := 1; ; n++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", sim.ErrInvalidDescriptor, err)
		}
		nums, err := parseInts(rec[1:])
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", n, rec[0], err)
		}
		descs = append(descs, sim.Descriptor{
			Name:        strings.TrimSpace(rec[0]),
			ArrivalTime: nums[0],
			BurstCPU:    nums[1],
			IORate:      nums[2],
			BurstIO:     nums[3],
		})
	}
	return descs, nil
}

// csvColumns are the recognized CSV header names.
var csvColumns = []string{"name", "arrival", "cpu_burst", "io_burst", "io_rate"}

// ParseCSV reads comma-separated processes with a header row naming the
// columns in any order. io_burst and io_rate may be omitted (default 0).
func ParseCSV(r io.Reader) ([]sim.Descriptor, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV header: %v", sim.ErrInvalidDescriptor, err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if !isCSVColumn(name) {
			return nil, fmt.Errorf("%w: unknown CSV column %q; valid: %s", sim.ErrInvalidDescriptor, h, strings.Join(csvColumns, ", "))
		}
		col[name] = i
	}
	for _, required := range []string{"name", "arrival", "cpu_burst"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%w: CSV header missing column %q", sim.ErrInvalidDescriptor, required)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", sim.ErrInvalidDescriptor, err)
	}
	descs := make([]sim.Descriptor, 0, len(rows))
	for i, row := range rows {
		field := func(name string) (int64, error) {
			idx, ok := col[name]
			if !ok {
				return 0, nil
			}
			return parseInt(row[idx])
		}
		d := sim.Descriptor{Name: strings.TrimSpace(row[col["name"]])}
		var errs []error
		var e error
		d.ArrivalTime, e = field("arrival")
		errs = append(errs, e)
		d.BurstCPU, e = field("cpu_burst")
		errs = append(errs, e)
		d.BurstIO, e = field("io_burst")
		errs = append(errs, e)
		d.IORate, e = field("io_rate")
		errs = append(errs, e)
		if err := errors.Join(errs...); err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i+1, d.Name, err)
		}
		descs = append(descs, d)
	}
	return descs, nil
}

func isCSVColumn(name string) bool {
	for _, c := range csvColumns {
		if c == name {
			return true
		}
	}
	return false
}

func parseInts(fields []string) ([]int64, error) {
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := parseInt(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseInt accepts base-10 integers only; fractions, NaN and Inf are rejected.
func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", sim.ErrInvalidDescriptor, s)
	}
	return v, nil
}

// LoadProcessFile reads a workload file, picking the format from its
// extension: .yaml/.yml (WorkloadSpec), .csv (CSV with header), anything
// else the semicolon text format. The returned spec carries any policy or
// quantum the file sets; descriptors are validated before returning.
func LoadProcessFile(path string) (*WorkloadSpec, []sim.Descriptor, error) {
	var (
		spec  *WorkloadSpec
		descs []sim.Descriptor
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if spec, err = LoadWorkloadSpec(path); err != nil {
			return nil, nil, err
		}
		if err = spec.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		if descs, err = spec.Descriptors(); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, nil, fmt.Errorf("reading workload: %w", openErr)
		}
		defer f.Close()
		if strings.EqualFold(filepath.Ext(path), ".csv") {
			descs, err = ParseCSV(f)
		} else {
			descs, err = ParseText(f)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		spec = &WorkloadSpec{Version: CurrentVersion, Processes: descs}
	}
	if err := sim.ValidateDescriptors(descs); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, descs, nil
}
