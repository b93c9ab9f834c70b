package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bookstoreapi/bookstore/pkg/authors"
	"github.com/bookstoreapi/bookstore/pkg/binder"
	"github.com/bookstoreapi/bookstore/pkg/books"
	"github.com/bookstoreapi/bookstore/pkg/config"
	"github.com/bookstoreapi/bookstore/pkg/errcodes"
	"github.com/bookstoreapi/bookstore/pkg/genres"
	"github.com/bookstoreapi/bookstore/pkg/images"
	"github.com/bookstoreapi/bookstore/pkg/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB, imageStore images.Store) (*http.Server, error) {
	e, err := newEcho(cfg, db, imageStore)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func newEcho(cfg *config.Config, db *bun.DB, imageStore images.Store) (*echo.Echo, error) {
	// Groups capture the handler when middleware is attached, so it has to be
	// replaced before any route is registered.
	echo.NotFoundHandler = notFoundHandler

	e := echo.New()
	e.HideBanner = true

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b
	e.JSONSerializer = binder.JSONSerializer{}

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	health.RegisterRoutes(e)

	registerAPIRoutes(e, db, imageStore)
	images.RegisterRoutes(e, imageStore)

	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	return e, nil
}

// registerAPIRoutes mounts the resource groups. Every request gets its own
// unit of work.
func registerAPIRoutes(e *echo.Echo, db *bun.DB, imageStore images.Store) {
	api := e.Group("/api")
	api.Use(store.Middleware(db))

	authors.RegisterRoutesWithGroup(api.Group("/authors"), db, imageStore)
	books.RegisterRoutesWithGroup(api.Group("/books"), db, imageStore)
	genres.RegisterRoutesWithGroup(api.Group("/genres"), db)
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
