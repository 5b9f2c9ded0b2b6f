package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// localFileStore is the os-backed implementation of [FileStore].
type localFileStore struct {
	logger *logger.Logger
}

// NewLocalFileStore constructs a [FileStore] working on the local file
// system.
func NewLocalFileStore(logger *logger.Logger) FileStore {
	return &localFileStore{logger: logger}
}

// EnsureDir implements [FileStore].
func (s *localFileStore) EnsureDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("ensure dir %s: %w", dir, err)
	}
	return nil
}

// ReadFile implements [FileStore]. The content type is taken from the file
// extension and sniffed from the data when the extension is unknown.
func (s *localFileStore) ReadFile(ctx context.Context, path string) (models.Blob, error) {
	if err := ctx.Err(); err != nil {
		return models.Blob{}, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Blob{}, fmt.Errorf("read %s: %w", path, ErrFileNotFound)
	}
	if err != nil {
		return models.Blob{}, fmt.Errorf("read %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return models.Blob{}, fmt.Errorf("read %s: %w", path, ErrNotAFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Blob{}, fmt.Errorf("read %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return models.Blob{ContentType: contentType, Data: data}, nil
}

// WriteFile implements [FileStore]. Data goes to a temporary file in the
// target directory first and is renamed into place.
func (s *localFileStore) WriteFile(ctx context.Context, path string, data []byte) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".partial-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	s.logger.Debug().Str("path", path).Int("size", len(data)).Msg("file written")
	return nil
}
