// Package store provides a unified interface to interchangeable blob backends
package store

import (
	"context"
	"errors"
	"fmt"

	"sensutv/internal/platform/logger"
	"sensutv/internal/platform/store/file"
	"sensutv/internal/platform/store/s3"
)

// Backend names a blob backend selected via configuration
type Backend string

const (
	// BackendFile keeps documents and media under a local data directory
	BackendFile Backend = "file"

	// BackendS3 keeps documents and media in an S3-compatible bucket
	BackendS3 Backend = "s3"
)

// Blob is the byte-level seam both backends implement.
// Keys are slash-separated addressing conventions, not filesystem paths.
// Get returns a NotFound project error when the key is absent.
// Put overwrites whatever is at key; there is no locking and no versioning,
// racing writers lose updates (last write wins).
type Blob interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Config selects and configures the backend
type Config struct {
	Backend Backend
	File    file.Config
	S3      s3.Config
}

// Store is the facade handed to modules
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	Log logger.Logger

	// Blob is the selected backend, nil on the zero value
	Blob Blob
}

// Option mutates the Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by subclients
func WithLogger(l logger.Logger) Option {
	return func(s *Store) error {
		s.Log = l
		return nil
	}
}

// Open constructs a Store with the configured backend
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// defaults for zero logger to avoid nil checks
	s.Log = s.Log.With().Logger()

	switch cfg.Backend {
	case BackendFile, "":
		b, err := file.Open(cfg.File, s.Log)
		if err != nil {
			return nil, err
		}
		s.Blob = b
	case BackendS3:
		b, err := s3.Open(ctx, cfg.S3, s.Log)
		if err != nil {
			return nil, err
		}
		s.Blob = b
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	return s, nil
}

// Guard verifies the configured backend answers a Ping
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if s.Blob == nil {
		return nil
	}
	if p, ok := s.Blob.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("blob: %w", err)
		}
	}
	return nil
}

// Close closes the backend if it holds resources
// nil backends are ignored
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.Blob == nil {
		return nil
	}
	if c, ok := s.Blob.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
