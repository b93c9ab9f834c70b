package books

import (
	"github.com/bookstoreapi/bookstore/pkg/images"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers book routes on a pre-configured group.
// Uploaded cover images are written to imageStore.
func RegisterRoutesWithGroup(g *echo.Group, db bun.IDB, imageStore images.Store) {
	h := &handler{
		db:          db,
		bookService: NewService(imageStore),
	}

	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.deleteBook)
}
