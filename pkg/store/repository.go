package store

import (
	"context"
	"database/sql"

	"github.com/bookstoreapi/bookstore/pkg/errcodes"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Repository provides the storage operations shared by every entity type. PT
// is the pointer type of T so that new rows can be allocated generically.
type Repository[T any, PT interface {
	*T
	Entity
}] struct {
	resource  string
	relations []string
}

// NewRepository returns a repository for T. The resource name is used in not
// found errors and relations are eager-loaded on reads.
func NewRepository[T any, PT interface {
	*T
	Entity
}](resource string, relations ...string) *Repository[T, PT] {
	return &Repository[T, PT]{resource: resource, relations: relations}
}

func (r *Repository[T, PT]) Resource() string {
	return r.resource
}

func (r *Repository[T, PT]) selectQuery(uow *UnitOfWork, model interface{}) *bun.SelectQuery {
	q := uow.DB().NewSelect().Model(model)
	for _, rel := range r.relations {
		q = q.Relation(rel)
	}
	return q
}

// ListAll returns every row ordered by primary key.
func (r *Repository[T, PT]) ListAll(ctx context.Context, uow *UnitOfWork) ([]*T, error) {
	rows := []*T{}
	err := r.selectQuery(uow, &rows).
		OrderExpr("?TablePKs ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return rows, nil
}

func (r *Repository[T, PT]) GetByID(ctx context.Context, uow *UnitOfWork, id int) (*T, error) {
	row := PT(new(T))
	row.SetEntityID(id)

	err := r.selectQuery(uow, row).WherePK().Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound(r.resource)
		}
		return nil, errors.WithStack(err)
	}
	return (*T)(row), nil
}

func (r *Repository[T, PT]) Exists(ctx context.Context, uow *UnitOfWork, id int) (bool, error) {
	row := PT(new(T))
	row.SetEntityID(id)

	exists, err := uow.DB().NewSelect().Model(row).WherePK().Exists(ctx)
	if err != nil {
		return false, errors.WithStack(err)
	}
	return exists, nil
}

// Insert writes a new row, assigning its id, the initial version and its
// timestamps.
func (r *Repository[T, PT]) Insert(ctx context.Context, uow *UnitOfWork, row *T) error {
	e := PT(row)
	e.SetEntityVersion(1)
	e.Touch(uow.Now())

	_, err := uow.DB().NewInsert().
		Model(row).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

// Delete removes the row with the given id. Dependent rows are removed by the
// database's foreign key rules.
func (r *Repository[T, PT]) Delete(ctx context.Context, uow *UnitOfWork, id int) error {
	row := PT(new(T))
	row.SetEntityID(id)

	res, err := uow.DB().NewDelete().Model(row).WherePK().Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if n == 0 {
		return errcodes.NotFound(r.resource)
	}
	return nil
}
