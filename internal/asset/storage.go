package asset

import (
	"context"
	"io"
	"time"
)

// Storage is the external blob store. The production implementation talks to
// an S3-compatible service; tests substitute a mock.
type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignGet(key string, expiry time.Duration) (string, error)
}
