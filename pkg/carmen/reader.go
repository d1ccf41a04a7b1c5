package carmen

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/carmenlog/carmenlog-go/internal/stream"
)

// discardLogger drops all output; sessions log nothing unless WithLogger
// is given.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Stats counts what one decoding session did with its input. Dropped
// lines leave no other trace: the sequence itself is silent about them.
type Stats struct {
	// Lines is the number of input lines read.
	Lines int
	// Scans is the number of records produced.
	Scans int
	// Ignored counts blank, comment, and unrecognized-tag lines.
	Ignored int
	// Failed counts recognized lines dropped by a decode failure.
	Failed int
}

// Reader decodes a CARMEN log stream into a lazy, finite, forward-only
// sequence of laser scans. It is single-pass: restarting requires
// reopening the source. Not safe for concurrent use.
type Reader struct {
	src    io.ReadCloser
	cfg    *config
	dec    LineDecoder
	log    *slog.Logger
	stats  Stats
	closed bool
}

// Open opens a CARMEN log file for decoding. Files ending in .gz are
// decompressed transparently. The caller must Close the reader.
func Open(path string, opts ...Option) (*Reader, error) {
	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	src, err := stream.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	return newReader(src, cfg), nil
}

// NewReader decodes from an already-open stream. If r implements
// io.Closer, Close closes it; otherwise Close only marks the reader
// done.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	src, ok := r.(io.ReadCloser)
	if !ok {
		src = io.NopCloser(r)
	}
	return newReader(src, cfg), nil
}

func newReader(src io.ReadCloser, cfg *config) *Reader {
	return &Reader{
		src: src,
		cfg: cfg,
		dec: cfg.buildDecoder(),
		log: cfg.slogger(),
	}
}

// Scans returns the record sequence. Each pull decodes input lines until
// one yields a record or the stream ends; lines that fail to decode are
// dropped silently (counted in Stats, logged at debug level). A non-nil
// error is yielded only for a stream-level failure, after which the
// sequence is over.
func (r *Reader) Scans() iter.Seq2[*LaserScan, error] {
	return func(yield func(*LaserScan, error) bool) {
		if r.closed {
			yield(nil, ErrReaderClosed)
			return
		}
		sc := stream.NewScanner(r.src, r.cfg.maxLineBytes)
		for sc.Scan() {
			r.stats.Lines++
			line := stream.Sanitize(sc.Text())

			rec, err := r.dec.DecodeLine(line)
			if err != nil {
				r.stats.Failed++
				r.log.Debug("dropping undecodable line",
					"line", truncateLine(line), "err", err)
				continue
			}
			if rec == nil {
				r.stats.Ignored++
				continue
			}
			r.stats.Scans++
			if !yield(rec, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(nil, fmt.Errorf("reading log stream: %w", err))
		}
	}
}

// Stats reports the session counters accumulated so far. Final totals
// are available once the sequence is exhausted.
func (r *Reader) Stats() Stats {
	return r.stats
}

// Close releases the underlying stream. Safe to call more than once.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.src.Close()
}

// ScanFile opens path, yields its records, and closes the file on every
// exit path, including an early break by the consumer.
//
//	for rec, err := range carmen.ScanFile("intel.log.gz") {
//	    if err != nil {
//	        return err
//	    }
//	    use(rec)
//	}
func ScanFile(path string, opts ...Option) iter.Seq2[*LaserScan, error] {
	return func(yield func(*LaserScan, error) bool) {
		rd, err := Open(path, opts...)
		if err != nil {
			yield(nil, err)
			return
		}
		defer rd.Close()
		for rec, err := range rd.Scans() {
			if !yield(rec, err) {
				return
			}
		}
	}
}

// ReadFile decodes the whole file eagerly. Convenient for small logs and
// tests; prefer ScanFile for the multi-hundred-MB dataset files.
func ReadFile(path string, opts ...Option) ([]*LaserScan, error) {
	var recs []*LaserScan
	for rec, err := range ScanFile(path, opts...) {
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
