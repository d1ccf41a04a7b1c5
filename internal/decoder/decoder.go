// Package decoder implements per-line decoding of the CARMEN log format.
//
// CARMEN messages share no schema beyond whitespace-delimited tokens whose
// count and meaning vary by message type and logging-tool version. The
// decoder identifies the message variant from the leading tag, walks the
// token stream with a forward-only cursor, and produces a canonical scan
// record, or an error that makes the caller drop the line.
package decoder

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/carmenlog/carmenlog-go/pkg/carmen/scan"
)

// Message tags recognized by the classifier. ROBOTLASER is a prefix match
// (the tag carries a laser index digit); the legacy front/rear tags match
// exactly.
const (
	tagRobotLaser = "ROBOTLASER"
	tagFrontLaser = "FLASER"
	tagRearLaser  = "RLASER"
)

var errScanMisaligned = errors.New("range run length disagrees with declared beam count")

// Config carries the per-session decode settings.
type Config struct {
	// FrameID is stamped onto every record.
	FrameID string

	// AssumedFOV is the sensor field of view, in radians, assumed for
	// FLASER/RLASER messages, which carry no angular metadata. It is a
	// dataset convention, not something read from the log.
	AssumedFOV float64

	// PreferMessageTimestamp selects the IPC timestamp (first trailer
	// value) as the ROBOTLASER stamp. When false, the logger-local
	// timestamp (last trailer value) is used instead.
	PreferMessageTimestamp bool
}

// DefaultConfig matches the conventions of the public CARMEN datasets:
// a 180 degree forward-facing SICK scanner and IPC timestamps.
func DefaultConfig() Config {
	return Config{
		FrameID:                "laser",
		AssumedFOV:             math.Pi,
		PreferMessageTimestamp: true,
	}
}

// Decode decodes one CARMEN log line.
//
// Returns:
//   - (*scan.LaserScan, nil): the line carried a laser scan
//   - (nil, nil): blank, comment, or unrecognized tag (not an error)
//   - (nil, error): a recognized message that could not be decoded
func Decode(line string, cfg Config) (*scan.LaserScan, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	tokens := strings.Fields(line)
	tag := tokens[0]
	switch {
	case strings.HasPrefix(tag, tagRobotLaser):
		return decodeRobotLaser(newCursor(tokens[1:]), cfg)
	case tag == tagFrontLaser, tag == tagRearLaser:
		// Structurally identical messages for the front and rear scanner.
		return decodeLegacyLaser(tokens, cfg)
	default:
		// Open format: ODOM, PARAM, TRUEPOS and anything else pass through.
		return nil, nil
	}
}

// decodeRobotLaser handles the self-describing message:
//
//	ROBOTLASER<i> type start_angle fov ang_res max_range accuracy rem_mode
//	              n r1..rn [flags1..flagsn] num_rem rem.. laser_pose(3)
//	              robot_pose(3) tv rv fwd_safety side_safety turn_axis
//	              ipc_ts hostname logger_ts
//
// The bracketed flag run is the layout ambiguity resolved by
// resolveTailLayout.
func decodeRobotLaser(cur *cursor, cfg Config) (*scan.LaserScan, error) {
	if _, err := cur.takeInt(); err != nil { // laser type
		return nil, err
	}
	startAngle, err := cur.takeFloat()
	if err != nil {
		return nil, err
	}
	if _, err := cur.takeFloat(); err != nil { // field of view
		return nil, err
	}
	angRes, err := cur.takeFloat()
	if err != nil {
		return nil, err
	}
	maxRange, err := cur.takeFloat()
	if err != nil {
		return nil, err
	}
	if _, err := cur.takeFloat(); err != nil { // accuracy
		return nil, err
	}
	if _, err := cur.takeInt(); err != nil { // remission mode
		return nil, err
	}

	n, err := cur.takeInt()
	if err != nil {
		return nil, err
	}
	ranges, err := cur.takeFloatRun(n)
	if err != nil {
		return nil, err
	}

	if resolveTailLayout(cur.remaining(), n) == tailFlagged {
		if err := cur.skip(n); err != nil { // too-close flags
			return nil, err
		}
	}

	numRem, err := cur.takeInt()
	if err != nil {
		return nil, err
	}
	if err := cur.skip(numRem); err != nil { // remission values, not retained
		return nil, err
	}

	laserPose, err := takePose(cur)
	if err != nil {
		return nil, err
	}
	robotPose, err := takePose(cur)
	if err != nil {
		return nil, err
	}
	tv, err := cur.takeFloat()
	if err != nil {
		return nil, err
	}
	rv, err := cur.takeFloat()
	if err != nil {
		return nil, err
	}
	if err := cur.skip(3); err != nil { // forward/side safety, turn axis
		return nil, err
	}

	// Trailer: ipc_timestamp ipc_hostname logger_timestamp.
	stamp, err := cur.takeFloat()
	if err != nil {
		return nil, err
	}
	if !cfg.PreferMessageTimestamp {
		if err := cur.skip(1); err != nil { // hostname
			return nil, err
		}
		if stamp, err = cur.takeFloat(); err != nil {
			return nil, err
		}
	}

	if len(ranges) != n {
		return nil, errScanMisaligned
	}
	if !(angRes > 0) || math.IsInf(angRes, 0) {
		return nil, &FieldError{Kind: "float", Err: errors.New("angular resolution must be positive and finite")}
	}

	return &scan.LaserScan{
		Stamp:          stamp,
		FrameID:        cfg.FrameID,
		AngleMin:       startAngle,
		AngleIncrement: angRes,
		RangeMin:       0.0,
		RangeMax:       maxRange,
		Ranges:         ranges,
		RobotPose:      &robotPose,
		LaserPose:      &laserPose,
		TV:             &tv,
		RV:             &rv,
	}, nil
}

// decodeLegacyLaser handles the fixed-layout FLASER/RLASER messages:
//
//	FLASER n r1..rn x y theta odom_x odom_y odom_theta ipc_ts hostname logger_ts
//
// Angular metadata is absent from this message type entirely; it is
// synthesized from cfg.AssumedFOV. The stamp is positional from the end
// of the line, which tolerates loggers that append extra fields between
// the pose and the trailer.
func decodeLegacyLaser(tokens []string, cfg Config) (*scan.LaserScan, error) {
	cur := newCursor(tokens[1:])

	n, err := cur.takeInt()
	if err != nil {
		return nil, err
	}
	ranges, err := cur.takeFloatRun(n)
	if err != nil {
		return nil, err
	}
	robotPose, err := takePose(cur)
	if err != nil {
		return nil, err
	}

	// Trailer convention: ... ipc_timestamp ipc_hostname logger_timestamp.
	if len(tokens) < 3 {
		return nil, &FieldError{Index: 0, Kind: "float", Err: errMissingToken}
	}
	stampIdx := len(tokens) - 3
	stamp, err := strconv.ParseFloat(tokens[stampIdx], 64)
	if err != nil {
		return nil, &FieldError{Index: stampIdx, Kind: "float", Err: err}
	}

	if len(ranges) != n {
		return nil, errScanMisaligned
	}

	fov := cfg.AssumedFOV
	angleMin := -fov / 2.0
	angleInc := fov / float64(max(n-1, 1))

	rangeMax := 0.0
	for _, r := range ranges {
		if r > rangeMax {
			rangeMax = r
		}
	}

	return &scan.LaserScan{
		Stamp:          stamp,
		FrameID:        cfg.FrameID,
		AngleMin:       angleMin,
		AngleIncrement: angleInc,
		RangeMin:       0.0,
		RangeMax:       rangeMax,
		Ranges:         ranges,
		RobotPose:      &robotPose,
	}, nil
}

func takePose(cur *cursor) (scan.Pose2D, error) {
	x, err := cur.takeFloat()
	if err != nil {
		return scan.Pose2D{}, err
	}
	y, err := cur.takeFloat()
	if err != nil {
		return scan.Pose2D{}, err
	}
	yaw, err := cur.takeFloat()
	if err != nil {
		return scan.Pose2D{}, err
	}
	return scan.Pose2D{X: x, Y: y, Yaw: yaw}, nil
}
