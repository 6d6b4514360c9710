package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/yigit/courseboard/internal/pkg/logger"
)

// LocalStorage keeps documents on the local filesystem, one file per key.
type LocalStorage struct {
	basePath string
	log      zerolog.Logger
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory when missing.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	log := logger.For("local_storage")
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		log.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	log.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath, log: log}, nil
}

// resolve maps key onto a path inside basePath. Keys escaping the root are
// reported as access denied.
func (ls *LocalStorage) resolve(key string) (string, error) {
	rel := filepath.FromSlash(key)
	if key == "" || !filepath.IsLocal(rel) {
		return "", &StorageError{Code: CodeAccessDenied, Key: key, Err: fmt.Errorf("key outside storage root")}
	}
	return filepath.Join(ls.basePath, rel), nil
}

// Upload writes body to a temporary file next to the target and renames it
// into place, so readers never observe a partial document.
func (ls *LocalStorage) Upload(ctx context.Context, key string, body io.Reader, size int64) error {
	if err := ctx.Err(); err != nil {
		return Classify(err, key)
	}

	dstPath, err := ls.resolve(key)
	if err != nil {
		return err
	}

	dir := filepath.Dir(dstPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		ls.log.Error().Err(err).Str("path", dir).Msg("Failed to create subdirectory")
		return Classify(err, key)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		ls.log.Error().Err(err).Str("path", dir).Msg("Failed to create destination file")
		return Classify(err, key)
	}
	tmpPath := tmp.Name()

	written, err := io.Copy(tmp, body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil && size >= 0 && written != size {
		err = fmt.Errorf("short write: %d of %d bytes", written, size)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		ls.log.Error().Err(err).Str("key", key).Msg("Failed to save document content")
		return Classify(err, key)
	}

	if err := os.Rename(tmpPath, dstPath); err != nil {
		_ = os.Remove(tmpPath)
		ls.log.Error().Err(err).Str("key", key).Msg("Failed to move document into place")
		return Classify(err, key)
	}

	ls.log.Info().Str("key", key).Int64("size", written).Msg("Document saved")
	return nil
}

// Fetch opens the document stored under key.
func (ls *LocalStorage) Fetch(ctx context.Context, key string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, Classify(err, key)
	}

	path, err := ls.resolve(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, Classify(err, key)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, Classify(err, key)
	}
	if info.Size() == 0 {
		f.Close()
		return nil, &StorageError{Code: CodeEmptyResponse, Key: key}
	}

	return &Document{Body: f, Size: info.Size(), ContentType: PDFContentType}, nil
}
