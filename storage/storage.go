// Package storage archives completed scoresheets to object storage.
package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// ScoresheetArchiver persists rendered scoresheets under a stable key and
// serves their public URLs.
type ScoresheetArchiver interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}
