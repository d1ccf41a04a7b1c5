package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/carmenlog/carmenlog-go/pkg/carmen"
)

// ValidFormats lists all valid output formats.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// OutputScan writes a record in the specified format to the writer.
func OutputScan(format string, rec *carmen.LaserScan, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(rec, out)
	case "pretty":
		return OutputPretty(rec, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes a record as JSON Lines format.
func OutputJSON(rec *carmen.LaserScan, out io.Writer) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// OutputPretty writes a one-line human-readable summary of a record.
func OutputPretty(rec *carmen.LaserScan, out io.Writer) error {
	fovDeg := (rec.AngleMax() - rec.AngleMin) * 180.0 / math.Pi

	if _, err := fmt.Fprintf(out, "[%.6f] %s %d beams fov %.1fdeg",
		rec.Stamp, rec.FrameID, len(rec.Ranges), fovDeg); err != nil {
		return err
	}
	if rec.RobotPose != nil {
		if _, err := fmt.Fprintf(out, " pose (%.2f, %.2f, %.2f)",
			rec.RobotPose.X, rec.RobotPose.Y, rec.RobotPose.Yaw); err != nil {
			return err
		}
	}
	if rec.TV != nil && rec.RV != nil {
		if _, err := fmt.Fprintf(out, " tv %.2f rv %.2f", *rec.TV, *rec.RV); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out)
	return err
}
