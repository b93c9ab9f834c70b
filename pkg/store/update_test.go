package store

import (
	"context"
	"testing"

	"github.com/bookstoreapi/bookstore/pkg/errcodes"
	"github.com/bookstoreapi/bookstore/pkg/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rename(name string) MergeFunc[models.Genre] {
	return func(_ context.Context, g *models.Genre) (bool, error) {
		if g.Name == name {
			return false, nil
		}
		g.Name = name
		return true, nil
	}
}

func TestRepository_Update(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	genres := NewRepository[models.Genre]("Genre")

	require.NoError(t, genres.Update(ctx, New(db), 2, 2, rename("Speculative Fiction")))

	g, err := genres.GetByID(ctx, New(db), 2)
	require.NoError(t, err)
	assert.Equal(t, "Speculative Fiction", g.Name)
	assert.Equal(t, 2, g.Version)

	// Applying the same patch again writes nothing.
	require.NoError(t, genres.Update(ctx, New(db), 2, 2, rename("Speculative Fiction")))
	g, err = genres.GetByID(ctx, New(db), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Version)
}

func TestRepository_Update_IDMismatch(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	genres := NewRepository[models.Genre]("Genre")

	err := genres.Update(context.Background(), New(db), 2, 1, rename("x"))
	assert.ErrorIs(t, err, errcodes.IDMismatch())
}

func TestRepository_Update_NotFound(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	genres := NewRepository[models.Genre]("Genre")

	err := genres.Update(context.Background(), New(db), 42, 42, rename("x"))
	assert.ErrorIs(t, err, errcodes.NotFound("Genre"))
}

func TestRepository_Update_MergeError(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	genres := NewRepository[models.Genre]("Genre")

	boom := errors.New("boom")
	err := genres.Update(context.Background(), New(db), 1, 1, func(context.Context, *models.Genre) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRepository_Update_ConcurrentModification(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	genres := NewRepository[models.Genre]("Genre")

	err := genres.Update(ctx, New(db), 1, 1, func(ctx context.Context, g *models.Genre) (bool, error) {
		// Another writer updates the row between load and save.
		require.NoError(t, genres.Update(ctx, New(db), 1, 1, rename("Epic Fantasy")))
		g.Name = "Dark Fantasy"
		return true, nil
	})
	assert.ErrorIs(t, err, errcodes.ConcurrentModification("Genre"))

	g, err := genres.GetByID(ctx, New(db), 1)
	require.NoError(t, err)
	assert.Equal(t, "Epic Fantasy", g.Name)
}

func TestRepository_Update_DeletedDuringUpdate(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	genres := NewRepository[models.Genre]("Genre")

	err := genres.Update(ctx, New(db), 2, 2, func(ctx context.Context, g *models.Genre) (bool, error) {
		require.NoError(t, genres.Delete(ctx, New(db), 2))
		g.Name = "Gone"
		return true, nil
	})
	assert.ErrorIs(t, err, errcodes.NotFound("Genre"))
}
