package store

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

const contextKey = "unit_of_work"

// Middleware gives every request its own UnitOfWork.
func Middleware(db bun.IDB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(contextKey, New(db))
			return next(c)
		}
	}
}

// FromEchoContext returns the request's UnitOfWork. When the middleware isn't
// installed a fresh one over db is returned.
func FromEchoContext(c echo.Context, db bun.IDB) *UnitOfWork {
	if uow, ok := c.Get(contextKey).(*UnitOfWork); ok {
		return uow
	}
	uow := New(db)
	c.Set(contextKey, uow)
	return uow
}
