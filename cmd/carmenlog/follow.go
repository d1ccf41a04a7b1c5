package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carmenlog/carmenlog-go/pkg/carmen"
)

var (
	followFormat string
	followFlags  decodeFlags
)

var followCmd = &cobra.Command{
	Use:   "follow <file>",
	Short: "Watch a live log and output records as they appear",
	Long: `Tail a CARMEN log that is still being written by a running
logger and output each laser scan as soon as its line lands in the
file. The file must be plain text; gzip logs cannot be tailed.

Decode failures are reported on stderr (with --verbose) instead of being
silently dropped, since a live session usually wants to notice a
misbehaving logger.

Examples:
  # Watch a recording session
  carmenlog follow /tmp/session.log

  # Pretty output, rear scanner convention
  carmenlog follow --format pretty --frame-id rear_laser /tmp/session.log`,
	Args: cobra.ExactArgs(1),
	RunE: runFollow,
}

func init() {
	followCmd.Flags().StringVarP(&followFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	followFlags.register(followCmd)
	rootCmd.AddCommand(followCmd)
}

func runFollow(cmd *cobra.Command, args []string) error {
	if !ValidFormats[followFormat] {
		return fmt.Errorf("unknown format: %s", followFormat)
	}
	opts, err := followFlags.options(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scans, errs, err := carmen.Follow(ctx, args[0], opts...)
	if err != nil {
		return err
	}

	for {
		select {
		case rec, ok := <-scans:
			if !ok {
				return nil
			}
			if err := OutputScan(followFormat, rec, os.Stdout); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			if verbose {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		case <-ctx.Done():
			return nil
		}
	}
}
