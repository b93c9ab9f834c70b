package images

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/bookstoreapi/bookstore/pkg/errcodes"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
)

// FileStore keeps images in a local directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save writes to a temporary file next to the destination and renames it into
// place, so readers never see a partially written image.
func (s *FileStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create images directory: %s", s.dir)
	}

	tmpPath := filepath.Join(s.dir, "."+uuid.NewString()+".tmp")
	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", errors.Wrap(err, "failed to write image")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", errors.WithStack(err)
	}

	dst := filepath.Join(s.dir, name)
	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return "", errors.Wrap(err, "failed to move image into place")
	}

	logger.FromContext(ctx).Info("image saved", logger.Data{"path": dst})

	return URL(name), nil
}

func (s *FileStore) Serve(c echo.Context, name string) error {
	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return errcodes.NotFound("Image")
	}
	return c.File(path)
}
