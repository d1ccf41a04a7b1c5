package main

import (
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/carmenlog/carmenlog-go/pkg/carmen"
	"github.com/carmenlog/carmenlog-go/pkg/carmen/geometry"
)

// decodeFlags are the decoding settings shared by dump, stats and
// follow. Explicit flags override values loaded from a geometry profile.
type decodeFlags struct {
	frameID    string
	fovDegrees float64
	geometry   string
	loggerTS   bool
}

func (d *decodeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.frameID, "frame-id", "",
		"frame label stamped onto every record (default \"laser\")")
	cmd.Flags().Float64Var(&d.fovDegrees, "fov", 0,
		"assumed field of view for FLASER/RLASER messages, degrees (default 180)")
	cmd.Flags().StringVar(&d.geometry, "geometry", "",
		"geometry profile YAML file (see the geometry package)")
	cmd.Flags().BoolVar(&d.loggerTS, "logger-timestamp", false,
		"stamp ROBOTLASER records with the logger-local timestamp instead of the IPC timestamp")
}

func (d *decodeFlags) options(log *slog.Logger) ([]carmen.Option, error) {
	var opts []carmen.Option
	if d.geometry != "" {
		p, err := geometry.Load(d.geometry)
		if err != nil {
			return nil, err
		}
		opts = append(opts, p.Options()...)
	}
	if d.frameID != "" {
		opts = append(opts, carmen.WithFrameID(d.frameID))
	}
	if d.fovDegrees > 0 {
		opts = append(opts, carmen.WithAssumedFOV(d.fovDegrees*math.Pi/180.0))
	}
	if d.loggerTS {
		opts = append(opts, carmen.WithPreferMessageTimestamp(false))
	}
	if log != nil {
		opts = append(opts, carmen.WithLogger(log))
	}
	return opts, nil
}
