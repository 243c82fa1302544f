package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts where uploaded assets live. The upload service only
// talks to this interface, so local disk and S3-compatible object
// storage are interchangeable.
type Storage interface {
	// Save stores a file at the given path, creating parents as needed.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL for the stored path.
	URL(path string) string
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // For local storage
	BaseURL   string // Public URL base
	Bucket    string // For S3-compatible storage
	Region    string // For S3
	AccessKey string // For S3
	SecretKey string // For S3
	Endpoint  string // For R2 or custom S3 endpoints
}

// NewStorage creates a storage backend based on configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
