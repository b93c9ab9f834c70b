package authors

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
	db            bun.IDB
	authorService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	authors, err := h.authorService.ListAuthors(ctx, store.FromEchoContext(c, h.db))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, authors))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	author, err := h.authorService.RetrieveAuthor(ctx, store.FromEchoContext(c, h.db), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, author))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateAuthorPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	author := &models.Author{
		Name:      params.Name,
		Biography: params.Biography,
	}
	err := h.authorService.CreateAuthor(ctx, store.FromEchoContext(c, h.db), author, imageFile(params.FormFiles))
	if err != nil {
		return errors.WithStack(err)
	}

	logger.FromContext(ctx).Info("author created", logger.Data{"author_id": author.ID})

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/authors/%d", author.ID))
	return errors.WithStack(c.JSON(http.StatusCreated, author))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	params := UpdateAuthorPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	err = h.authorService.UpdateAuthor(ctx, store.FromEchoContext(c, h.db), id, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *handler) deleteAuthor(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	err = h.authorService.DeleteAuthor(ctx, store.FromEchoContext(c, h.db), id)
	if err != nil {
		return errors.WithStack(err)
	}

	logger.FromContext(ctx).Info("author deleted", logger.Data{"author_id": id})

	return c.NoContent(http.StatusNoContent)
}
