package store

import (
	"context"

	"github.com/bookstoreapi/bookstore/pkg/errcodes"
)

// MergeFunc applies a partial update to a loaded row and reports whether
// anything changed.
type MergeFunc[T any] func(ctx context.Context, row *T) (bool, error)

// Update loads the row with the given id, merges the patch into it and saves
// it through uow. payloadID is the id carried by the patch and must match id.
//
// When the save conflicts the row is looked up again: if it is gone the
// update fails as not found, otherwise with a concurrent modification error.
func (r *Repository[T, PT]) Update(ctx context.Context, uow *UnitOfWork, id, payloadID int, merge MergeFunc[T]) error {
	if payloadID != id {
		return errcodes.IDMismatch()
	}

	row, err := r.GetByID(ctx, uow, id)
	if err != nil {
		return err
	}

	changed, err := merge(ctx, row)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	uow.Modify(PT(row))
	res, err := uow.Save(ctx)
	if err != nil {
		return err
	}
	if res == Conflict {
		exists, err := r.Exists(ctx, uow, id)
		if err != nil {
			return err
		}
		if !exists {
			return errcodes.NotFound(r.resource)
		}
		return errcodes.ConcurrentModification(r.resource)
	}
	return nil
}
