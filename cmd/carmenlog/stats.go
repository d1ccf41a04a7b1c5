package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/carmenlog/carmenlog-go/internal/logfind"
	"github.com/carmenlog/carmenlog-go/internal/safefile"
	"github.com/carmenlog/carmenlog-go/pkg/carmen"
)

var (
	statsFormat string
	statsOut    string
	statsFlags  decodeFlags
)

var statsCmd = &cobra.Command{
	Use:   "stats [file|dir ...]",
	Short: "Validate logs and report scan statistics",
	Long: `Decode CARMEN log files and report what a SLAM pipeline cares
about before trusting a dataset: how many scans decoded, whether
timestamps increase strictly, which scan sizes occur, and the scan
period distribution.

The decoder itself never enforces these properties; it drops what it
cannot decode and keeps going. This command is the place where a log's
health becomes visible.

Examples:
  # Validate one log
  carmenlog stats mit-csail-3rd-floor.log.gz

  # Machine-readable report for a whole dataset directory
  carmenlog stats --format json ~/datasets/carmen/

  # Write the report to a file
  carmenlog stats --format json --out report.json intel.log.gz`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "text",
		"Output format: text, json")
	statsCmd.Flags().StringVar(&statsOut, "out", "",
		"Write the JSON report to this file instead of stdout")
	statsFlags.register(statsCmd)
	rootCmd.AddCommand(statsCmd)
}

// periodStats summarizes the gaps between consecutive scan timestamps.
type periodStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// logReport is the per-file validation result.
type logReport struct {
	Path                string       `json:"path"`
	Scans               int          `json:"scans"`
	LinesRead           int          `json:"lines_read"`
	LinesFailed         int          `json:"lines_failed"`
	TimestampsMonotonic bool         `json:"timestamps_monotonic"`
	ScanSizes           []int        `json:"scan_sizes"`
	EmptyScans          int          `json:"empty_scans"`
	NaNStamps           int          `json:"nan_stamps"`
	ScanPeriod          *periodStats `json:"scan_period,omitempty"`
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsFormat != "text" && statsFormat != "json" {
		return fmt.Errorf("unknown format: %s", statsFormat)
	}
	opts, err := statsFlags.options(logger)
	if err != nil {
		return err
	}
	files, err := logfind.Expand(args)
	if err != nil {
		return err
	}

	var reports []logReport
	for _, path := range files {
		rep, err := collectReport(path, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		reports = append(reports, rep)
	}

	if statsOut != "" {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		return safefile.WriteFile(statsOut, append(data, '\n'), 0o644)
	}

	if statsFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	for _, rep := range reports {
		printReport(os.Stdout, rep)
	}
	return nil
}

func collectReport(path string, opts []carmen.Option) (logReport, error) {
	rd, err := carmen.Open(path, opts...)
	if err != nil {
		return logReport{}, err
	}
	defer rd.Close()

	var stamps []float64
	var sizes []int
	for rec, err := range rd.Scans() {
		if err != nil {
			return logReport{}, err
		}
		stamps = append(stamps, rec.Stamp)
		sizes = append(sizes, len(rec.Ranges))
	}
	return buildReport(path, stamps, sizes, rd.Stats()), nil
}

// buildReport derives the validation numbers from one log's decoded
// timestamps and scan sizes.
func buildReport(path string, stamps []float64, sizes []int, stats carmen.Stats) logReport {
	rep := logReport{
		Path:                path,
		Scans:               len(stamps),
		LinesRead:           stats.Lines,
		LinesFailed:         stats.Failed,
		TimestampsMonotonic: true,
		ScanSizes:           uniqueSorted(sizes),
	}

	for i, s := range stamps {
		if math.IsNaN(s) {
			rep.NaNStamps++
		}
		if i > 0 && stamps[i-1] >= s {
			rep.TimestampsMonotonic = false
		}
	}
	for _, n := range sizes {
		if n == 0 {
			rep.EmptyScans++
		}
	}

	if len(stamps) > 1 && rep.NaNStamps == 0 {
		dts := make([]float64, len(stamps)-1)
		for i := range dts {
			dts[i] = stamps[i+1] - stamps[i]
		}
		rep.ScanPeriod = &periodStats{
			Mean: stat.Mean(dts, nil),
			Std:  stat.StdDev(dts, nil),
			Min:  floats.Min(dts),
			Max:  floats.Max(dts),
		}
	}
	return rep
}

func uniqueSorted(sizes []int) []int {
	seen := make(map[int]struct{}, 4)
	var out []int
	for _, n := range sizes {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func printReport(out io.Writer, rep logReport) {
	fmt.Fprintln(out, rep.Path)
	fmt.Fprintf(out, "  scans:                 %d\n", rep.Scans)
	fmt.Fprintf(out, "  lines read/failed:     %d / %d\n", rep.LinesRead, rep.LinesFailed)
	fmt.Fprintf(out, "  timestamps monotonic:  %v\n", rep.TimestampsMonotonic)
	fmt.Fprintf(out, "  scan sizes:            %v\n", rep.ScanSizes)
	fmt.Fprintf(out, "  empty scans:           %d\n", rep.EmptyScans)
	fmt.Fprintf(out, "  NaN stamps:            %d\n", rep.NaNStamps)
	if p := rep.ScanPeriod; p != nil {
		fmt.Fprintf(out, "  scan period mean/std:  %.4fs / %.4fs\n", p.Mean, p.Std)
		fmt.Fprintf(out, "  scan period min/max:   %.4fs / %.4fs\n", p.Min, p.Max)
	}
}
