package scrubber

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"scrubsi/internal/config"
	"scrubsi/internal/fileutil"
	"scrubsi/internal/scrub"
)

// Result describes one completed scrub run.
type Result struct {
	InputPath  string
	OutputPath string
	Original   string
	Cleaned    string
	Removed    int
}

// InvalidInputError reports an input path that is missing or not a regular
// file. The run aborts cleanly and nothing is written.
type InvalidInputError struct {
	Path   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Path, e.Reason)
}

// Scrubber runs the scrub pipeline: validate input, read, filter, resolve a
// non-colliding output path, write.
type Scrubber struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New returns a Scrubber using the provided configuration and logger.
func New(cfg *config.Config, logger *slog.Logger) *Scrubber {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scrubber{cfg: cfg, logger: logger}
}

// Run scrubs the file at path and writes the cleaned copy next to it. The
// output path is the input path plus the configured suffix, disambiguated
// with a numeric counter when taken. Read and write failures propagate; no
// retries, no cleanup of a partially written file.
func (s *Scrubber) Run(ctx context.Context, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InvalidInputError{Path: path, Reason: "does not exist"}
		}
		return nil, fmt.Errorf("inspect input: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, &InvalidInputError{Path: path, Reason: "not a regular file"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read %s: content is not valid UTF-8", path)
	}
	original := string(data)
	s.logger.Debug("read input", "path", path, "bytes", len(data))

	cleaned, removed := scrub.Clean(original)

	base := path + s.cfg.Output.Suffix
	outputPath, err := fileutil.UniquePath(base)
	if err != nil {
		return nil, fmt.Errorf("resolve output path: %w", err)
	}
	s.logger.Debug("resolved output path", "base", base, "path", outputPath)

	if err := fileutil.WriteNewFile(outputPath, []byte(cleaned)); err != nil {
		return nil, fmt.Errorf("write %s: %w", outputPath, err)
	}
	s.logger.Info("wrote scrubbed copy", "path", outputPath, "removed", removed)

	return &Result{
		InputPath:  path,
		OutputPath: outputPath,
		Original:   original,
		Cleaned:    cleaned,
		Removed:    removed,
	}, nil
}
