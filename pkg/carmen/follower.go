package carmen

import (
	"context"
	"fmt"

	"github.com/nxadm/tail"

	"github.com/carmenlog/carmenlog-go/internal/stream"
)

// followerErrBuffer is the error channel buffer. A small buffer keeps
// errors from being dropped while the consumer is busy with a record.
const followerErrBuffer = 16

// Follow tails a CARMEN log that is still being written and delivers
// decoded records on the returned channel until ctx is cancelled or the
// file goes away. Unlike Reader, per-line decode failures are surfaced
// on the error channel as *DecodeError values, since a live session
// usually wants to notice a misbehaving logger.
//
// The file must exist and be plain text; gzip logs cannot be tailed.
// Both channels are closed when following stops.
func Follow(ctx context.Context, path string, opts ...Option) (<-chan *LaserScan, <-chan error, error) {
	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid options: %w", err)
	}
	dec := cfg.buildDecoder()
	log := cfg.slogger()

	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("tailing log: %w", err)
	}

	scanCh := make(chan *LaserScan)
	errCh := make(chan error, followerErrBuffer)

	go func() {
		defer close(scanCh)
		defer close(errCh)
		defer func() {
			_ = t.Stop()
			t.Cleanup()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case ln, ok := <-t.Lines:
				if !ok {
					return
				}
				if ln.Err != nil {
					sendError(ctx, errCh, fmt.Errorf("tailing log: %w", ln.Err))
					continue
				}

				line := stream.Sanitize(ln.Text)
				rec, err := dec.DecodeLine(line)
				if err != nil {
					log.Debug("undecodable line while following",
						"line", truncateLine(line), "err", err)
					sendError(ctx, errCh, &DecodeError{Line: line, Err: err})
					continue
				}
				if rec == nil {
					continue
				}
				select {
				case scanCh <- rec:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return scanCh, errCh, nil
}

// sendError delivers err without blocking shutdown; errors are dropped
// only when the buffer is full.
func sendError(ctx context.Context, errCh chan<- error, err error) {
	if err == nil {
		return
	}
	select {
	case errCh <- err:
	case <-ctx.Done():
	default:
	}
}
