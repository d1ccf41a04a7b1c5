package carmen

import (
	"math"

	"github.com/carmenlog/carmenlog-go/internal/decoder"
)

// LineDecoder is the interface for per-line CARMEN decoders.
// Implementations include DefaultDecoder (the standard laser message
// set) and caller-supplied decoders for site-specific tags.
type LineDecoder interface {
	// DecodeLine decodes a single log line.
	//
	// Returns:
	//   - (*LaserScan, nil): the line carried a scan
	//   - (nil, nil): line not recognized (not an error)
	//   - (nil, error): recognized but undecodable; the caller decides
	//     whether to drop the line or surface the error
	DecodeLine(line string) (*LaserScan, error)
}

// LineDecoderFunc adapts an ordinary function to the LineDecoder
// interface.
type LineDecoderFunc func(line string) (*LaserScan, error)

// DecodeLine implements LineDecoder.
func (f LineDecoderFunc) DecodeLine(line string) (*LaserScan, error) {
	return f(line)
}

// DefaultDecoder decodes the standard CARMEN laser message set:
// ROBOTLASER (both tail layouts), FLASER, and RLASER. The zero value
// uses the package defaults.
type DefaultDecoder struct {
	// FrameID overrides DefaultFrameID when non-empty.
	FrameID string

	// AssumedFOV overrides the 180 degree legacy-geometry assumption
	// when positive. Radians.
	AssumedFOV float64

	// UseLoggerTimestamp stamps ROBOTLASER records with the
	// logger-local timestamp instead of the IPC timestamp.
	UseLoggerTimestamp bool
}

// DecodeLine implements LineDecoder.
func (d DefaultDecoder) DecodeLine(line string) (*LaserScan, error) {
	cfg := decoder.DefaultConfig()
	if d.FrameID != "" {
		cfg.FrameID = d.FrameID
	}
	if d.AssumedFOV > 0 && !math.IsInf(d.AssumedFOV, 1) {
		cfg.AssumedFOV = d.AssumedFOV
	}
	cfg.PreferMessageTimestamp = !d.UseLoggerTimestamp
	return decoder.Decode(line, cfg)
}

var _ LineDecoder = DefaultDecoder{}

// DecoderChain tries each decoder in order and stops at the first one
// that recognizes the line or fails on it. Nil entries are skipped.
type DecoderChain struct {
	Decoders []LineDecoder
}

// DecodeLine implements LineDecoder.
func (c *DecoderChain) DecodeLine(line string) (*LaserScan, error) {
	for _, d := range c.Decoders {
		if d == nil {
			continue
		}
		rec, err := d.DecodeLine(line)
		if rec != nil || err != nil {
			return rec, err
		}
	}
	return nil, nil
}

// DecodeLine decodes a single CARMEN log line with the default settings.
//
//	rec, err := carmen.DecodeLine(line)
//	if err != nil {
//	    log.Printf("bad line: %v", err)
//	} else if rec != nil {
//	    // process scan
//	}
//
// rec == nil with a nil error means the line is not a laser message.
func DecodeLine(line string) (*LaserScan, error) {
	return DefaultDecoder{}.DecodeLine(line)
}
