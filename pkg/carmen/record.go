package carmen

import "github.com/carmenlog/carmenlog-go/pkg/carmen/scan"

// LaserScan is the canonical record produced for every decoded line.
// See the scan package for field semantics.
type LaserScan = scan.LaserScan

// Pose2D is a planar robot or sensor pose.
type Pose2D = scan.Pose2D
