package decoder

import (
	"errors"
	"fmt"
	"strconv"
)

// Token-level failure causes, wrapped by FieldError.
var (
	errMissingToken  = errors.New("missing token")
	errNegativeCount = errors.New("negative count")
)

// FieldError reports a failed extraction at a token position.
type FieldError struct {
	Index int    // token position within the message body
	Kind  string // expected shape: "int", "float", "skip"
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("token %d: want %s: %v", e.Index, e.Kind, e.Err)
}

// Unwrap returns the underlying cause, enabling errors.Is checks against
// strconv errors and the sentinel causes above.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// cursor is a forward-only read position over one line's tokens. Every
// field is consumed exactly once and in declaration order; nothing ever
// moves the position backward.
type cursor struct {
	tokens []string
	pos    int
}

func newCursor(tokens []string) *cursor {
	return &cursor{tokens: tokens}
}

// remaining returns the token count from the current position to the end
// of the line. It is the only lookahead the decoder performs.
func (c *cursor) remaining() int {
	return len(c.tokens) - c.pos
}

func (c *cursor) next(kind string) (string, error) {
	if c.pos >= len(c.tokens) {
		return "", &FieldError{Index: c.pos, Kind: kind, Err: errMissingToken}
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, nil
}

func (c *cursor) takeInt() (int, error) {
	idx := c.pos
	tok, err := c.next("int")
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &FieldError{Index: idx, Kind: "int", Err: err}
	}
	return v, nil
}

func (c *cursor) takeFloat() (float64, error) {
	idx := c.pos
	tok, err := c.next("float")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &FieldError{Index: idx, Kind: "float", Err: err}
	}
	return v, nil
}

// takeFloatRun consumes exactly n consecutive floats. On any failure the
// cursor is left mid-run and the whole line must be abandoned.
func (c *cursor) takeFloatRun(n int) ([]float64, error) {
	if n < 0 {
		return nil, &FieldError{Index: c.pos, Kind: "float", Err: errNegativeCount}
	}
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v, err := c.takeFloat()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// skip advances past n tokens without interpreting them.
func (c *cursor) skip(n int) error {
	if n < 0 {
		return &FieldError{Index: c.pos, Kind: "skip", Err: errNegativeCount}
	}
	if c.remaining() < n {
		return &FieldError{Index: len(c.tokens), Kind: "skip", Err: errMissingToken}
	}
	c.pos += n
	return nil
}
