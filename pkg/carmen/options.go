package carmen

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/carmenlog/carmenlog-go/internal/stream"
)

// Defaults applied when the corresponding option is not given.
const (
	// DefaultFrameID labels records whose session does not name a frame.
	DefaultFrameID = "laser"

	// DefaultMaxLineBytes bounds a single log line.
	DefaultMaxLineBytes = stream.DefaultMaxLineBytes
)

// DefaultAssumedFOV is the field of view assumed for legacy
// FLASER/RLASER messages: 180 degrees, the SICK scanner convention of
// the public CARMEN datasets.
const DefaultAssumedFOV = math.Pi

// Option configures a decoding session using the functional options
// pattern. The same options apply to Open, NewReader, ScanFile, ReadFile
// and Follow.
type Option func(*config)

type config struct {
	frameID                string
	assumedFOV             float64
	preferMessageTimestamp bool
	maxLineBytes           int
	logger                 *slog.Logger
	decoder                LineDecoder
}

func defaultSessionConfig() *config {
	return &config{
		frameID:                DefaultFrameID,
		assumedFOV:             DefaultAssumedFOV,
		preferMessageTimestamp: true,
		maxLineBytes:           DefaultMaxLineBytes,
	}
}

func applyOptions(opts []Option) *config {
	cfg := defaultSessionConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

func (c *config) validate() error {
	if c.frameID == "" {
		return fmt.Errorf("frame id must be non-empty")
	}
	if !(c.assumedFOV > 0) || math.IsInf(c.assumedFOV, 1) {
		return fmt.Errorf("assumed field of view must be positive and finite, got %v", c.assumedFOV)
	}
	if c.maxLineBytes <= 0 {
		return fmt.Errorf("max line bytes must be positive, got %d", c.maxLineBytes)
	}
	return nil
}

// buildDecoder returns the session's line decoder: the caller-supplied
// one if set, otherwise a DefaultDecoder carrying the session settings.
func (c *config) buildDecoder() LineDecoder {
	if c.decoder != nil {
		return c.decoder
	}
	return DefaultDecoder{
		FrameID:            c.frameID,
		AssumedFOV:         c.assumedFOV,
		UseLoggerTimestamp: !c.preferMessageTimestamp,
	}
}

// slogger returns the configured logger, or a disabled one.
func (c *config) slogger() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return discardLogger
}

// WithFrameID sets the frame label stamped onto every record.
// Default: "laser".
func WithFrameID(id string) Option {
	return func(c *config) {
		c.frameID = id
	}
}

// WithAssumedFOV sets the sensor field of view, in radians, assumed for
// legacy FLASER/RLASER messages. These messages carry no angular
// metadata, so this is a dataset convention the caller must know.
// Default: pi (180 degrees).
func WithAssumedFOV(fov float64) Option {
	return func(c *config) {
		c.assumedFOV = fov
	}
}

// WithPreferMessageTimestamp selects which trailer timestamp stamps
// ROBOTLASER records: the IPC timestamp when true (default), the
// logger-local timestamp when false. Legacy messages always use the IPC
// timestamp, which is the only one their trailer convention exposes at a
// fixed position.
func WithPreferMessageTimestamp(prefer bool) Option {
	return func(c *config) {
		c.preferMessageTimestamp = prefer
	}
}

// WithMaxLineBytes caps the size of a single log line. Lines over the
// cap terminate the sequence with a stream error. Default: 1MB.
func WithMaxLineBytes(n int) Option {
	return func(c *config) {
		c.maxLineBytes = n
	}
}

// WithLogger sets a logger for per-line diagnostics: dropped lines are
// reported at debug level with the failure reason. If logger is nil,
// logging stays disabled (default).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDecoder replaces the default line decoder. Settings that only the
// default decoder understands (frame id, assumed FOV, timestamp
// preference) do not reach a custom decoder; bake them in yourself.
// A nil decoder leaves the default active.
func WithDecoder(d LineDecoder) Option {
	return func(c *config) {
		if d != nil {
			c.decoder = d
		}
	}
}

// WithDecoders chains multiple decoders; the first to recognize a line
// wins. The default decoder is not implied; include a DefaultDecoder
// explicitly to keep the standard message set.
func WithDecoders(decoders ...LineDecoder) Option {
	return func(c *config) {
		if len(decoders) > 0 {
			c.decoder = &DecoderChain{Decoders: decoders}
		}
	}
}
