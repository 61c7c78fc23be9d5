package service

import (
	"context"
	"io"
)

// Uploader stores an image and returns its URL. The profile only keeps the
// returned path as an opaque string.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
}
