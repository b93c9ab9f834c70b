package images

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/bookstoreapi/bookstore/pkg/config"
	"github.com/bookstoreapi/bookstore/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const routePrefix = "/images/"

// Store persists uploaded images and serves them back under /images.
type Store interface {
	// Save writes the image under name, replacing any existing image with the
	// same name, and returns its public URL.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	// Serve responds with the image stored under name.
	Serve(c echo.Context, name string) error
}

// NewStore builds the store selected by cfg.ImageStorage.
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.ImageStorage {
	case config.ImageStorageS3:
		return NewS3Store(ctx, cfg)
	case config.ImageStorageFilesystem, "":
		return NewFileStore(cfg.ImagesDir), nil
	default:
		return nil, errors.Errorf("unknown image storage %q", cfg.ImageStorage)
	}
}

// Name reduces an uploaded file name to its final path element.
func Name(original string) (string, error) {
	name := filepath.Base(strings.ReplaceAll(original, `\`, "/"))
	switch name {
	case "", ".", "..", "/":
		return "", errcodes.ValidationError("Image file name is invalid.")
	}
	return name, nil
}

func URL(name string) string {
	return routePrefix + name
}

// SaveUpload stores a multipart file under its base name and returns the
// image URL.
func SaveUpload(ctx context.Context, store Store, fh *multipart.FileHeader) (string, error) {
	name, err := Name(fh.Filename)
	if err != nil {
		return "", err
	}
	f, err := fh.Open()
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer f.Close()

	url, err := store.Save(ctx, name, f)
	if err != nil {
		return "", err
	}
	return url, nil
}

// RegisterRoutes serves stored images at GET /images/:name.
func RegisterRoutes(e *echo.Echo, store Store) {
	e.GET(routePrefix+":name", func(c echo.Context) error {
		name, err := Name(c.Param("name"))
		if err != nil || name != c.Param("name") {
			return errcodes.NotFound("Image")
		}
		return store.Serve(c, name)
	})
}
