package ports

import (
	"context"
	"io"
)

// FileStore is the object-store collaborator holding media blobs. Put returns
// the public URL persisted on the owning record.
type FileStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
