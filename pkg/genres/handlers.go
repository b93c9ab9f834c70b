package genres

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/bookstoreapi/bookstore/pkg/errcodes"
	"github.com/bookstoreapi/bookstore/pkg/models"
	"github.com/bookstoreapi/bookstore/pkg/store"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/uptrace/bun"
)

type handler struct {
	db           bun.IDB
	genreService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()
	uow := store.FromEchoContext(c, h.db)

	genres, err := h.genreService.ListGenres(ctx, uow)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, genres))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Genre")
	}

	genre, err := h.genreService.RetrieveGenre(ctx, store.FromEchoContext(c, h.db), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, genre))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateGenrePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	genre := &models.Genre{Name: params.Name}
	err := h.genreService.CreateGenre(ctx, store.FromEchoContext(c, h.db), genre)
	if err != nil {
		return errors.WithStack(err)
	}

	logger.FromContext(ctx).Info("genre created", logger.Data{"genre_id": genre.ID})

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/genres/%d", genre.ID))
	return errors.WithStack(c.JSON(http.StatusCreated, genre))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Genre")
	}

	params := UpdateGenrePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	err = h.genreService.UpdateGenre(ctx, store.FromEchoContext(c, h.db), id, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *handler) deleteGenre(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Genre")
	}

	err = h.genreService.DeleteGenre(ctx, store.FromEchoContext(c, h.db), id)
	if err != nil {
		return errors.WithStack(err)
	}

	logger.FromContext(ctx).Info("genre deleted", logger.Data{"genre_id": id})

	return c.NoContent(http.StatusNoContent)
}
