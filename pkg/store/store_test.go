package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookstoreapi/bookstore/pkg/config"
	"github.com/bookstoreapi/bookstore/pkg/database"
	"github.com/bookstoreapi/bookstore/pkg/errcodes"
	"github.com/bookstoreapi/bookstore/pkg/migrations"
	"github.com/bookstoreapi/bookstore/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	db, err := database.New(config.NewForTest())
	require.NoError(t, err)

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestRepository_ListAll(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	uow := New(db)

	books := NewRepository[models.Book]("Book", "Author", "Genre")
	rows, err := books.ListAll(ctx, uow)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].ID)
	assert.Equal(t, 2, rows[1].ID)
	require.NotNil(t, rows[1].Author)
	assert.Equal(t, "J.R.R. Tolkien", rows[1].Author.Name)
	require.NotNil(t, rows[1].Genre)
	assert.Equal(t, "Fantasy", rows[1].Genre.Name)
	assert.Equal(t, models.NewDate(1937, time.September, 21), rows[1].PublicationDate)
}

func TestRepository_GetByID(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	uow := New(db)

	authors := NewRepository[models.Author]("Author")
	author, err := authors.GetByID(ctx, uow, 1)
	require.NoError(t, err)
	assert.Equal(t, "J.K. Rowling", author.Name)
	assert.Equal(t, 1, author.Version)

	_, err = authors.GetByID(ctx, uow, 999)
	assert.ErrorIs(t, err, errcodes.NotFound("Author"))
}

func TestRepository_InsertExistsDelete(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	uow := New(db)
	genres := NewRepository[models.Genre]("Genre")

	genre := &models.Genre{Name: "Horror"}
	require.NoError(t, genres.Insert(ctx, uow, genre))
	assert.Equal(t, 3, genre.ID)
	assert.Equal(t, 1, genre.Version)
	assert.False(t, genre.CreatedAt.IsZero())

	exists, err := genres.Exists(ctx, uow, genre.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, genres.Delete(ctx, uow, genre.ID))

	exists, err = genres.Exists(ctx, uow, genre.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	err = genres.Delete(ctx, uow, genre.ID)
	assert.ErrorIs(t, err, errcodes.NotFound("Genre"))
}

func TestUnitOfWork_Save(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	genres := NewRepository[models.Genre]("Genre")

	uow := New(db)
	res, err := uow.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, Ok, res)

	genre, err := genres.GetByID(ctx, uow, 2)
	require.NoError(t, err)
	genre.Name = "Sci-Fi"
	uow.Modify(genre)
	uow.Modify(genre)
	assert.Equal(t, 1, uow.Pending())

	res, err = uow.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, Ok, res)
	assert.Equal(t, 2, genre.Version)
	assert.Zero(t, uow.Pending())

	reloaded, err := genres.GetByID(ctx, New(db), 2)
	require.NoError(t, err)
	assert.Equal(t, "Sci-Fi", reloaded.Name)
	assert.Equal(t, 2, reloaded.Version)
}

func TestUnitOfWork_SaveConflict(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	authors := NewRepository[models.Author]("Author")

	first := New(db)
	second := New(db)

	a1, err := authors.GetByID(ctx, first, 1)
	require.NoError(t, err)
	a2, err := authors.GetByID(ctx, second, 1)
	require.NoError(t, err)

	a1.Biography = "first writer"
	first.Modify(a1)
	res, err := first.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, Ok, res)

	a2.Biography = "second writer"
	second.Modify(a2)
	res, err = second.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, Conflict, res)
	assert.Equal(t, 1, a2.Version)

	stored, err := authors.GetByID(ctx, New(db), 1)
	require.NoError(t, err)
	assert.Equal(t, "first writer", stored.Biography)
}

func TestUnitOfWork_SaveConflictRollsBackEverything(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	genres := NewRepository[models.Genre]("Genre")

	uow := New(db)
	fantasy, err := genres.GetByID(ctx, uow, 1)
	require.NoError(t, err)
	scifi, err := genres.GetByID(ctx, uow, 2)
	require.NoError(t, err)

	require.NoError(t, genres.Delete(ctx, New(db), 2))

	fantasy.Name = "High Fantasy"
	scifi.Name = "Space Opera"
	uow.Modify(fantasy)
	uow.Modify(scifi)

	res, err := uow.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, Conflict, res)
	assert.Equal(t, 1, fantasy.Version)

	stored, err := genres.GetByID(ctx, New(db), 1)
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", stored.Name)
}

func TestSaveResult_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ok", Ok.String())
	assert.Equal(t, "conflict", Conflict.String())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	e := echo.New()
	seen := []*UnitOfWork{}
	handler := Middleware(db)(func(c echo.Context) error {
		seen = append(seen, FromEchoContext(c, db))
		return nil
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		require.NoError(t, handler(c))
	}

	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])
}

func TestFromEchoContext_WithoutMiddleware(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	uow := FromEchoContext(c, db)
	require.NotNil(t, uow)
	assert.Same(t, uow, FromEchoContext(c, db))
}
