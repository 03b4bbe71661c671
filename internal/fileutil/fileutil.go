package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// UniquePath returns base when no filesystem entry exists at that path.
// Otherwise it probes base.1, base.2, ... and returns the first candidate
// with no existing entry. Any entry kind counts as a collision, not just
// regular files. The check-then-write race is accepted; callers that must
// not overwrite should create with O_EXCL (see WriteNewFile).
func UniquePath(base string) (string, error) {
	free, err := pathFree(base)
	if err != nil {
		return "", err
	}
	if free {
		return base, nil
	}
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s.%d", base, counter)
		free, err := pathFree(candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
}

func pathFree(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// WriteNewFile writes data to path, failing if the path already exists.
func WriteNewFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
