package authors

import (
	"github.com/bookstoreapi/bookstore/pkg/images"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers author routes on a pre-configured group.
// Uploaded author images are written to imageStore.
func RegisterRoutesWithGroup(g *echo.Group, db bun.IDB, imageStore images.Store) {
	h := &handler{
		db:            db,
		authorService: NewService(imageStore),
	}

	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.deleteAuthor)
}
