// Package stream opens CARMEN log sources for line-oriented reading,
// transparently decompressing gzip-packed logs the way the datasets are
// usually distributed.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
)

// DefaultMaxLineBytes bounds a single log line. A 360-beam scan with
// remissions is a few KB; 1MB leaves generous headroom.
const DefaultMaxLineBytes = 1 << 20

type gzipReadCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) {
	return g.gz.Read(p)
}

func (g *gzipReadCloser) Close() error {
	return errors.Join(g.gz.Close(), g.f.Close())
}

// Open opens path for reading. Files with a .gz extension are
// decompressed on the fly; everything else is read as-is.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(path), ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening gzip stream %s: %w", filepath.Base(path), err)
	}
	return &gzipReadCloser{gz: gz, f: f}, nil
}

// NewScanner returns a line scanner buffered for long scan lines.
// maxLineBytes <= 0 selects DefaultMaxLineBytes.
func NewScanner(r io.Reader, maxLineBytes int) *bufio.Scanner {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return sc
}

// Sanitize replaces invalid UTF-8 sequences with the replacement rune.
// Log files occasionally carry stray bytes in hostnames; they must not
// be fatal to the decode of the rest of the line.
func Sanitize(line string) string {
	if utf8.ValidString(line) {
		return line
	}
	return strings.ToValidUTF8(line, string(utf8.RuneError))
}
