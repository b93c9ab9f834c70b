package genres

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers genre routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, db bun.IDB) {
	h := &handler{
		db:           db,
		genreService: NewService(),
	}

	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.deleteGenre)
}
