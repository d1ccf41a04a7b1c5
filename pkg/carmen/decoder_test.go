package carmen_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmenlog/carmenlog-go/pkg/carmen"
)

const goodFLASER = "FLASER 3 1.0 2.0 3.0 0.5 0.5 0.0 0.5 0.5 0.0 1000.0 host 1000.1"

func TestDecodeLine(t *testing.T) {
	rec, err := carmen.DecodeLine(goodFLASER)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, carmen.DefaultFrameID, rec.FrameID)
	assert.Equal(t, 1000.0, rec.Stamp)

	rec, err = carmen.DecodeLine("GPS 12.5 47.1 1000.0 host 1000.1")
	require.NoError(t, err)
	assert.Nil(t, rec, "unrecognized tag must not be an error")

	rec, err = carmen.DecodeLine("FLASER 9 1.0")
	require.Error(t, err)
	assert.Nil(t, rec)
}

func TestDefaultDecoderSettings(t *testing.T) {
	d := carmen.DefaultDecoder{FrameID: "rear", AssumedFOV: math.Pi / 2}

	rec, err := d.DecodeLine(goodFLASER)
	require.NoError(t, err)
	assert.Equal(t, "rear", rec.FrameID)
	assert.InDelta(t, -math.Pi/4, rec.AngleMin, 1e-12)
}

func TestDecoderChainFirstMatchWins(t *testing.T) {
	custom := carmen.LineDecoderFunc(func(line string) (*carmen.LaserScan, error) {
		if !strings.HasPrefix(line, "MYLASER ") {
			return nil, nil
		}
		return &carmen.LaserScan{FrameID: "custom", Ranges: []float64{1}}, nil
	})

	chain := &carmen.DecoderChain{Decoders: []carmen.LineDecoder{
		nil, // skipped
		custom,
		carmen.DefaultDecoder{},
	}}

	rec, err := chain.DecodeLine("MYLASER whatever")
	require.NoError(t, err)
	assert.Equal(t, "custom", rec.FrameID)

	// Falls through to the default decoder.
	rec, err = chain.DecodeLine(goodFLASER)
	require.NoError(t, err)
	assert.Equal(t, carmen.DefaultFrameID, rec.FrameID)

	// Nobody recognizes it.
	rec, err = chain.DecodeLine("SONAR 4 1 2 3 4")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestDecoderChainStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	failing := carmen.LineDecoderFunc(func(string) (*carmen.LaserScan, error) {
		return nil, boom
	})
	reached := false
	sentinel := carmen.LineDecoderFunc(func(string) (*carmen.LaserScan, error) {
		reached = true
		return nil, nil
	})

	chain := &carmen.DecoderChain{Decoders: []carmen.LineDecoder{failing, sentinel}}
	_, err := chain.DecodeLine("anything")
	assert.ErrorIs(t, err, boom)
	assert.False(t, reached, "chain must stop at the failing decoder")
}

func TestReaderWithCustomDecoder(t *testing.T) {
	input := "MYLASER a\n" + goodFLASER + "\n"
	custom := carmen.LineDecoderFunc(func(line string) (*carmen.LaserScan, error) {
		if !strings.HasPrefix(line, "MYLASER ") {
			return nil, nil
		}
		return &carmen.LaserScan{FrameID: "custom"}, nil
	})

	rd, err := carmen.NewReader(strings.NewReader(input),
		carmen.WithDecoders(custom, carmen.DefaultDecoder{}))
	require.NoError(t, err)
	defer rd.Close()

	var frames []string
	for rec, err := range rd.Scans() {
		require.NoError(t, err)
		frames = append(frames, rec.FrameID)
	}
	assert.Equal(t, []string{"custom", carmen.DefaultFrameID}, frames)
}

func TestDecodeErrorMessageTruncated(t *testing.T) {
	long := "FLASER 500 " + strings.Repeat("1.0 ", 400)
	_, err := carmen.DecodeLine(long)
	require.Error(t, err)

	derr := &carmen.DecodeError{Line: long, Err: err}
	msg := derr.Error()
	assert.Less(t, len(msg), 200, "error message must not quote the whole line")
	assert.Contains(t, msg, "...")
	assert.ErrorIs(t, derr, err)
}
