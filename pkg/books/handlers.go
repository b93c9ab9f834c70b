package books

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
	db          bun.IDB
	bookService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.ListBooks(ctx, store.FromEchoContext(c, h.db))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, books))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	book, err := h.bookService.RetrieveBook(ctx, store.FromEchoContext(c, h.db), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book := &models.Book{
		Title:           params.Title,
		Price:           *params.Price,
		PublicationDate: params.PublicationDate,
		AuthorID:        params.AuthorID,
		GenreID:         params.GenreID,
	}
	err := h.bookService.CreateBook(ctx, store.FromEchoContext(c, h.db), book, imageFile(params.FormFiles))
	if err != nil {
		return errors.WithStack(err)
	}

	logger.FromContext(ctx).Info("book created", logger.Data{
		"book_id":   book.ID,
		"author_id": book.AuthorID,
		"genre_id":  book.GenreID,
	})

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/books/%d", book.ID))
	return errors.WithStack(c.JSON(http.StatusCreated, book))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	params := UpdateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	err = h.bookService.UpdateBook(ctx, store.FromEchoContext(c, h.db), id, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *handler) deleteBook(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	err = h.bookService.DeleteBook(ctx, store.FromEchoContext(c, h.db), id)
	if err != nil {
		return errors.WithStack(err)
	}

	logger.FromContext(ctx).Info("book deleted", logger.Data{"book_id": id})

	return c.NoContent(http.StatusNoContent)
}
