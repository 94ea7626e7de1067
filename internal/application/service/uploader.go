package service

import (
	"context"
	"io"
)

// Uploader stores admin-attached images (project visuals, experience and
// certification illustrations) and returns a public URL for them.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
