package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/carmenlog/carmenlog-go/pkg/carmen"
)

func sampleScan() *carmen.LaserScan {
	tv, rv := 0.3, 0.05
	return &carmen.LaserScan{
		Stamp:          1000.5,
		FrameID:        "laser",
		AngleMin:       -1.5708,
		AngleIncrement: 1.5708, // 3 beams spanning 180 degrees
		RangeMin:       0,
		RangeMax:       30,
		Ranges:         []float64{1.1, 2.2, 3.3},
		RobotPose:      &carmen.Pose2D{X: 11, Y: 21, Yaw: 0.2},
		LaserPose:      &carmen.Pose2D{X: 10, Y: 20, Yaw: 0.1},
		TV:             &tv,
		RV:             &rv,
	}
}

func TestOutputJSON(t *testing.T) {
	var sb strings.Builder
	if err := OutputJSON(sampleScan(), &sb); err != nil {
		t.Fatalf("OutputJSON: %v", err)
	}

	line := sb.String()
	if !strings.HasSuffix(line, "\n") {
		t.Error("JSON Lines output must end with a newline")
	}
	if strings.Count(line, "\n") != 1 {
		t.Error("JSON Lines output must be a single line")
	}

	var decoded carmen.LaserScan
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Stamp != 1000.5 || len(decoded.Ranges) != 3 {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
	if decoded.TV == nil || *decoded.TV != 0.3 {
		t.Errorf("TV lost in output: %v", decoded.TV)
	}
}

func TestOutputJSONOmitsAbsentFields(t *testing.T) {
	rec := sampleScan()
	rec.LaserPose = nil
	rec.TV = nil
	rec.RV = nil

	var sb strings.Builder
	if err := OutputJSON(rec, &sb); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"laser_pose", `"tv"`, `"rv"`} {
		if strings.Contains(sb.String(), field) {
			t.Errorf("absent field %s serialized: %s", field, sb.String())
		}
	}
}

func TestOutputPretty(t *testing.T) {
	var sb strings.Builder
	if err := OutputPretty(sampleScan(), &sb); err != nil {
		t.Fatalf("OutputPretty: %v", err)
	}

	line := sb.String()
	for _, want := range []string{"[1000.500000]", "3 beams", "fov 180.0deg", "pose (11.00, 21.00, 0.20)", "tv 0.30"} {
		if !strings.Contains(line, want) {
			t.Errorf("pretty output missing %q: %s", want, line)
		}
	}
}

func TestOutputPrettyWithoutPose(t *testing.T) {
	rec := sampleScan()
	rec.RobotPose = nil
	rec.TV = nil
	rec.RV = nil

	var sb strings.Builder
	if err := OutputPretty(rec, &sb); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(sb.String(), "pose") || strings.Contains(sb.String(), "tv") {
		t.Errorf("pretty output shows absent fields: %s", sb.String())
	}
}

func TestOutputScanUnknownFormat(t *testing.T) {
	var sb strings.Builder
	if err := OutputScan("xml", sampleScan(), &sb); err == nil {
		t.Error("want error for unknown format")
	}
}
