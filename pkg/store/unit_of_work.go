package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Entity is a row tracked by a UnitOfWork. The version is the optimistic
// concurrency token.
type Entity interface {
	EntityID() int
	SetEntityID(id int)
	EntityVersion() int
	SetEntityVersion(v int)
	Touch(now time.Time)
}

// SaveResult is the outcome of UnitOfWork.Save.
type SaveResult int

const (
	// Ok means every pending modification was written.
	Ok SaveResult = iota
	// Conflict means a pending row changed or vanished since it was loaded.
	// Nothing was written.
	Conflict
)

func (r SaveResult) String() string {
	if r == Conflict {
		return "conflict"
	}
	return "ok"
}

var errConflict = errors.New("optimistic concurrency conflict")

// UnitOfWork collects the modifications made while handling one request and
// writes them in a single transaction.
type UnitOfWork struct {
	db      bun.IDB
	now     func() time.Time
	pending []Entity
}

func New(db bun.IDB) *UnitOfWork {
	return &UnitOfWork{db: db, now: time.Now}
}

func (u *UnitOfWork) DB() bun.IDB {
	return u.db
}

// Modify registers e to be written by the next Save. Registering the same
// entity twice is a no-op.
func (u *UnitOfWork) Modify(e Entity) {
	for _, p := range u.pending {
		if p == e {
			return
		}
	}
	u.pending = append(u.pending, e)
}

// Now is the clock used for timestamps in this unit of work.
func (u *UnitOfWork) Now() time.Time {
	return u.now().UTC()
}

func (u *UnitOfWork) Pending() int {
	return len(u.pending)
}

// Save writes every pending entity guarded by its version. If any row was not
// updated the transaction is rolled back and Conflict is returned. Storage
// failures are returned as errors.
func (u *UnitOfWork) Save(ctx context.Context) (SaveResult, error) {
	if len(u.pending) == 0 {
		return Ok, nil
	}

	versions := make([]int, 0, len(u.pending))

	now := u.Now()
	err := u.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		for i, e := range u.pending {
			versions = append(versions, e.EntityVersion())

			e.SetEntityVersion(versions[i] + 1)
			e.Touch(now)

			res, err := tx.NewUpdate().
				Model(e).
				WherePK().
				Where("?TableAlias.version = ?", versions[i]).
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return errors.WithStack(err)
			}
			if n == 0 {
				return errConflict
			}
		}
		return nil
	})
	if err != nil {
		// Nothing was committed, so the loaded versions are still current.
		for i, v := range versions {
			u.pending[i].SetEntityVersion(v)
		}
		if errors.Is(err, errConflict) {
			return Conflict, nil
		}
		return Ok, err
	}

	u.pending = nil
	return Ok, nil
}
