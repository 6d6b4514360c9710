package filestorage

import (
	"context"
	"fmt"
	"io"

	"github.com/yigit/courseboard/internal/config"
)

// PDFContentType is the content type every trace document is stored with.
const PDFContentType = "application/pdf"

// Document is a fetched object. Callers must close Body. Size is -1 when
// the store does not report it.
type Document struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

// DocumentStore persists trace documents under keys built by BuildKey.
type DocumentStore interface {
	// Upload stores body under key, replacing any previous object.
	Upload(ctx context.Context, key string, body io.Reader, size int64) error

	// Fetch opens the object stored under key.
	Fetch(ctx context.Context, key string) (*Document, error)
}

// New returns the document store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (DocumentStore, error) {
	switch cfg.Driver {
	case config.StorageDriverLocal:
		return NewLocalStorage(cfg.LocalPath)
	case config.StorageDriverS3:
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewS3Storage(client, cfg.Bucket), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
