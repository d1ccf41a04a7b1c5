package safefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenRegular(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, info, err := OpenRegular(path)
	if err != nil {
		t.Fatalf("OpenRegular: %v", err)
	}
	defer f.Close()

	if info.Size() != int64(len("version: 1\n")) {
		t.Errorf("Size = %d", info.Size())
	}
}

func TestOpenRegularRejectsDirectory(t *testing.T) {
	_, _, err := OpenRegular(t.TempDir())
	if !errors.Is(err, ErrNotRegularFile) {
		t.Errorf("err = %v, want ErrNotRegularFile", err)
	}
}

func TestOpenRegularRejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.yaml")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link.yaml")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if _, _, err := OpenRegular(link); !errors.Is(err, ErrNotRegularFile) {
		t.Errorf("err = %v, want ErrNotRegularFile", err)
	}
}

func TestOpenRegularMissing(t *testing.T) {
	if _, _, err := OpenRegular(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("want error for missing file")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteFile(path, []byte(`{"scans":42}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"scans":42}` {
		t.Errorf("content = %q", data)
	}

	// Overwrite must replace, not append.
	if err := WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile (overwrite): %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "{}" {
		t.Errorf("content after overwrite = %q", data)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("leftover files: %v", entries)
	}
}
