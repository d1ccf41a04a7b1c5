package carmen

import (
	"errors"
	"fmt"
)

// ErrReaderClosed is returned when iterating a Reader after Close.
var ErrReaderClosed = errors.New("reader is closed")

// maxErrLineBytes bounds how much of a log line an error message quotes.
// Scan lines run to thousands of tokens.
const maxErrLineBytes = 80

// DecodeError reports a line that was recognized but failed to decode.
// The Reader swallows these by default; Follow surfaces them on its
// error channel.
type DecodeError struct {
	Line string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding line %q: %v", truncateLine(e.Line), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func truncateLine(line string) string {
	if len(line) <= maxErrLineBytes {
		return line
	}
	return line[:maxErrLineBytes] + "..."
}
