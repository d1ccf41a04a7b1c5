// Package logfind locates CARMEN log files on disk.
package logfind

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoLogFiles is returned when a directory contains nothing decodable.
var ErrNoLogFiles = errors.New("no log files found")

// IsLogFile reports whether name looks like a CARMEN log. The datasets
// use .log and .clf, often gzip-packed.
func IsLogFile(name string) bool {
	lower := strings.ToLower(name)
	lower = strings.TrimSuffix(lower, ".gz")
	return strings.HasSuffix(lower, ".log") || strings.HasSuffix(lower, ".clf")
}

// FindLogFiles returns the log files directly under dir, sorted by name.
// Dataset files are date-named, so lexical order is chronological order.
// Returns ErrNoLogFiles if none are found.
func FindLogFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading log directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !IsLogFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLogFiles, dir)
	}
	sort.Strings(files)
	return files, nil
}

// Expand resolves a mixed list of file and directory arguments into the
// log files they name. File arguments pass through untouched so callers
// can force unusual extensions; directories are searched.
func Expand(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := FindLogFiles(arg)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}
