// Package file implements the blob seam over a local data directory
package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	perr "sensutv/internal/platform/errors"
	"sensutv/internal/platform/logger"
)

// Config configures the local backend
type Config struct {
	// Dir is the preferred data directory
	Dir string

	// FallbackDir is used when Dir is not writable, defaults to the OS temp dir
	FallbackDir string
}

// FS keeps blobs as plain files under a base directory
type FS struct {
	base string
	log  logger.Logger
}

// Open probes the preferred directory for writability and falls back when it
// cannot be used, so a misconfigured volume degrades instead of failing boot
func Open(cfg Config, log logger.Logger) (*FS, error) {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		dir = "data"
	}
	if err := probe(dir); err != nil {
		fallback := strings.TrimSpace(cfg.FallbackDir)
		if fallback == "" {
			fallback = filepath.Join(os.TempDir(), "sensutv-data")
		}
		log.Warn().Str("dir", dir).Str("fallback", fallback).Err(err).
			Msg("data dir not writable, using fallback")
		if err := probe(fallback); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeStorage, "fallback data dir %s unusable", fallback)
		}
		dir = fallback
	}
	log.Info().Str("dir", dir).Msg("file store ready")
	return &FS{base: dir, log: log}, nil
}

// probe creates dir and verifies a file can be written and removed in it
func probe(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	test := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(test, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(test)
}

// Base returns the active data directory
func (f *FS) Base() string { return f.base }

// path maps a slash-separated key onto the base directory. Keys that
// resolve outside the base are rejected
func (f *FS) path(key string) (string, error) {
	p := filepath.Join(f.base, filepath.FromSlash(key))
	if p != f.base && !strings.HasPrefix(p, f.base+string(filepath.Separator)) {
		return "", perr.Newf(perr.ErrorCodeInvalidArgument, "key %q escapes data dir", key)
	}
	return p, nil
}

// Get reads the blob at key
func (f *FS) Get(_ context.Context, key string) ([]byte, error) {
	src, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.NotFoundf("no blob at %s", key)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeStorage, "read %s", key)
	}
	return data, nil
}

// Put writes data to a temporary sibling then atomically replaces the target.
// contentType is ignored, the filesystem has no use for it.
func (f *FS) Put(_ context.Context, key string, data []byte, _ string) error {
	dst, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeStorage, "mkdir for %s", key)
	}
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeStorage, "write %s", key)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeStorage, "replace %s", key)
	}
	return nil
}

// Ping re-probes the data directory
func (f *FS) Ping(_ context.Context) error { return probe(f.base) }
