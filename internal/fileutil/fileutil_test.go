package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUniquePathFreeBase(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "out.txt.si")

	got, err := UniquePath(base)
	if err != nil {
		t.Fatal(err)
	}
	if got != base {
		t.Fatalf("UniquePath = %q, want %q", got, base)
	}
}

func TestUniquePathProbesNumericSuffixes(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "out.txt.si")

	for _, path := range []string{base, base + ".1"} {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := UniquePath(base)
	if err != nil {
		t.Fatal(err)
	}
	if want := base + ".2"; got != want {
		t.Fatalf("UniquePath = %q, want %q", got, want)
	}
}

func TestUniquePathReturnsFirstFreeCandidate(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "report.si")

	// base taken, base.1 free, base.2 taken: the probe stops at base.1.
	if err := os.WriteFile(base, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(base+".2", nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := UniquePath(base)
	if err != nil {
		t.Fatal(err)
	}
	if want := base + ".1"; got != want {
		t.Fatalf("UniquePath = %q, want %q", got, want)
	}
}

func TestUniquePathDirectoryCollides(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "out.si")
	if err := os.Mkdir(base, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := UniquePath(base)
	if err != nil {
		t.Fatal(err)
	}
	if want := base + ".1"; got != want {
		t.Fatalf("UniquePath = %q, want %q", got, want)
	}
}

func TestWriteNewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.txt")

	if err := WriteNewFile(path, []byte("content")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "content" {
		t.Fatalf("content mismatch: got %q", got)
	}
}

func TestWriteNewFileRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taken.txt")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteNewFile(path, []byte("clobber")); err == nil {
		t.Fatal("expected error writing over existing file")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "original" {
		t.Fatalf("existing file was modified: %q", got)
	}
}
