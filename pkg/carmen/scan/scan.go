// Package scan defines the canonical record types produced by the CARMEN
// decoder. Records are constructed once per successfully decoded line and
// are never mutated afterwards.
package scan

// Pose2D is a planar pose (position plus heading) at a scan's timestamp.
// Values are taken from the log as-is, with no unit conversion.
type Pose2D struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Yaw float64 `json:"yaw"`
}

// LaserScan is one decoded 2D laser scan.
//
// Stamp is the source-selected timestamp in seconds. FrameID is the
// caller-supplied label stamped on every record of a decoding session;
// it is not derived from the log.
//
// RobotPose and LaserPose are nil when the source message layout does not
// carry them. TV and RV (translational and rotational velocity) are only
// present for ROBOTLASER messages.
type LaserScan struct {
	Stamp          float64   `json:"stamp"`
	FrameID        string    `json:"frame_id"`
	AngleMin       float64   `json:"angle_min"`
	AngleIncrement float64   `json:"angle_increment"`
	RangeMin       float64   `json:"range_min"`
	RangeMax       float64   `json:"range_max"`
	Ranges         []float64 `json:"ranges"`
	RobotPose      *Pose2D   `json:"robot_pose,omitempty"`
	LaserPose      *Pose2D   `json:"laser_pose,omitempty"`
	TV             *float64  `json:"tv,omitempty"`
	RV             *float64  `json:"rv,omitempty"`
}

// AngleMax returns the bearing of the last beam.
func (s *LaserScan) AngleMax() float64 {
	if len(s.Ranges) < 2 {
		return s.AngleMin
	}
	return s.AngleMin + s.AngleIncrement*float64(len(s.Ranges)-1)
}
