// Package geometry loads sensor geometry profiles for CARMEN datasets.
//
// Legacy FLASER/RLASER messages carry no angular metadata, so decoding
// them relies on knowing the dataset's sensor convention. A profile
// names that convention in a small YAML file instead of hardcoding it:
//
//	version: 1
//	frame_id: base_laser
//	fov_degrees: 180
//
// Loaded profiles translate directly into decoding options:
//
//	p, err := geometry.Load("intel.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rd, err := carmen.Open("intel.log.gz", p.Options()...)
package geometry

import (
	"math"

	"github.com/carmenlog/carmenlog-go/pkg/carmen"
)

// SupportedVersion is the profile file format version this package
// understands.
const SupportedVersion = 1

// Profile describes one dataset's sensor convention.
type Profile struct {
	// Version is the profile format version. Must be SupportedVersion.
	Version int `yaml:"version"`

	// FrameID labels the records decoded under this profile. Optional;
	// empty keeps the session default.
	FrameID string `yaml:"frame_id"`

	// FOVDegrees is the sensor field of view assumed for legacy
	// messages. Must be in (0, 360].
	FOVDegrees float64 `yaml:"fov_degrees"`
}

// FOVRadians returns the field of view in radians.
func (p *Profile) FOVRadians() float64 {
	return p.FOVDegrees * math.Pi / 180.0
}

// Options translates the profile into decoding options.
func (p *Profile) Options() []carmen.Option {
	opts := []carmen.Option{carmen.WithAssumedFOV(p.FOVRadians())}
	if p.FrameID != "" {
		opts = append(opts, carmen.WithFrameID(p.FrameID))
	}
	return opts
}
