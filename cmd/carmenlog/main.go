// Command carmenlog decodes and inspects CARMEN robotics log files.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// persistent flags
	verbose bool
	logFile string

	// logger is built in PersistentPreRun and shared by all subcommands.
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "carmenlog",
	Short: "Decode and inspect CARMEN robotics logs",
	Long: `carmenlog reads CARMEN robot log files (plain or gzip-packed) and
decodes the laser scan messages they contain: self-describing ROBOTLASER
lines and the legacy FLASER/RLASER layout. Unrecognized and malformed
lines are skipped, the way the datasets expect.

Use "dump" to print decoded records, "stats" to validate a log, and
"follow" to watch a log being written by a live session.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger()
	},
}

// newLogger builds the debug logger: discarded by default, stderr with
// --verbose, or a rolling file with --log-file.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer
	switch {
	case logFile != "":
		w = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			Compress:   true,
		}
	case verbose:
		w = os.Stderr
	default:
		w = io.Discard
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug output (dropped lines, decode reasons)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write debug output to this file, rolled at 10MB")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
