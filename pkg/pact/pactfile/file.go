package pactfile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pactcore/pact/internal/pactlock"
	"github.com/pactcore/pact/pkg/pact/logging"
	"github.com/pactcore/pact/pkg/pact/model"
)

// Common errors for pact file loading, mirroring the teacher's config
// loader error set.
var (
	ErrFileNotFound     = errors.New("pact file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrEmptyFile        = errors.New("pact file is empty")
)

const (
	lockMaxAttempts = 5
	lockBaseDelay   = 20 * time.Millisecond
)

// Read loads and decodes a pact file from path.
func Read(path string) (*model.Pact, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("stat pact file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("read pact file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	if isYAMLPath(path) {
		return ParseYAML(data)
	}
	return Decode(data)
}

// isYAMLPath reports whether path's extension marks it as the auxiliary
// YAML fixture format rather than a canonical JSON pact file, the same
// extension-sniffing the teacher's config.LoadFromFile/SaveToFile use.
func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Write encodes p and writes it to path via a temp-file-then-rename, so a
// reader never observes a partially-written file.
func Write(path string, p *model.Pact) error {
	var data []byte
	var err error
	if isYAMLPath(path) {
		data, err = ToYAML(p)
	} else {
		data, err = Encode(p)
	}
	if err != nil {
		return fmt.Errorf("encode pact: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary pact file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary pact file: %w", err)
	}
	return nil
}

// WriteMerged merges incoming into whatever pact already exists at path
// (treating a missing file as an empty base) and writes the result back,
// holding an advisory lock for the duration so concurrent test runs
// appending to the same file don't interleave (spec.md §5).
func WriteMerged(path string, incoming *model.Pact, opts model.MergeOptions, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.New(logging.DefaultConfig())
	}

	lock, err := pactlock.Acquire(path, lockMaxAttempts, lockBaseDelay)
	if err != nil {
		return fmt.Errorf("acquire pact file lock: %w", err)
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("releasing pact file lock", "path", path, "error", err)
		}
	}()

	existing, err := Read(path)
	if err != nil {
		if !errors.Is(err, ErrFileNotFound) {
			return fmt.Errorf("read existing pact file: %w", err)
		}
		existing = &model.Pact{
			Consumer: incoming.Consumer,
			Provider: incoming.Provider,
			Spec:     incoming.Spec,
		}
	}

	merged, err := model.Merge(existing, incoming, opts)
	if err != nil {
		return err
	}

	logger.Debug("merged pact file", "path", path, "interactions", len(merged.Interactions))
	return Write(path, merged)
}
