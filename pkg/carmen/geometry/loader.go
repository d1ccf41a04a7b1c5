package geometry

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/carmenlog/carmenlog-go/internal/safefile"
)

// MaxProfileFileSize caps a profile file. A profile is a handful of
// lines; anything bigger is a mistake or an attack.
const MaxProfileFileSize = 64 * 1024

// Load reads and validates a profile file. Non-regular files (FIFOs,
// devices, symlinks) are rejected before reading.
func Load(path string) (*Profile, error) {
	f, info, err := safefile.OpenRegular(path)
	if err != nil {
		return nil, fmt.Errorf("opening geometry profile: %w", err)
	}
	defer f.Close()

	if info.Size() == 0 {
		return nil, errors.New("geometry profile is empty")
	}
	if info.Size() > MaxProfileFileSize {
		return nil, fmt.Errorf("geometry profile too large: %d bytes (max %d)", info.Size(), MaxProfileFileSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxProfileFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading geometry profile: %w", err)
	}
	if len(data) > MaxProfileFileSize {
		return nil, fmt.Errorf("geometry profile too large (grew past %d bytes)", MaxProfileFileSize)
	}

	return LoadBytes(data)
}

// LoadBytes parses and validates a profile from memory. Unknown YAML
// keys are rejected so typos surface instead of silently keeping
// defaults.
func LoadBytes(data []byte) (*Profile, error) {
	if len(data) == 0 {
		return nil, errors.New("geometry profile is empty")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parsing geometry profile: %w", err)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) validate() error {
	if p.Version != SupportedVersion {
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (want %d)", p.Version, SupportedVersion),
		}
	}
	if !(p.FOVDegrees > 0) || p.FOVDegrees > 360 {
		return &ValidationError{
			Field:   "fov_degrees",
			Message: fmt.Sprintf("must be in (0, 360], got %v", p.FOVDegrees),
		}
	}
	return nil
}
