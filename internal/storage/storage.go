package storage

import (
	"context"
	"io"
	"time"
)

// DefaultPresignedURLExpiry bounds how long an exported report link stays valid.
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage defines the object storage operations used for exported
// workout reports.
type FileStorage interface {
	// Upload stores an object under the given key.
	Upload(ctx context.Context, objectKey string, contentType string, body io.Reader) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for downloading an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
