package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bookstoreapi/bookstore/pkg/config"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type logQueryHook struct {
	log logger.Logger
}

func (*logQueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (qh *logQueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	data := logger.Data{"duration": time.Since(event.StartTime).String()}
	if event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows) {
		data["error"] = event.Err.Error()
	}
	qh.log.Debug(event.Query, data)
}

// New opens the SQLite database described by cfg. Every connection gets
// foreign keys enforced and a busy timeout, and SQLITE_BUSY errors are retried
// with backoff.
func New(cfg *config.Config) (*bun.DB, error) {
	connector, err := openConnector(sqliteshim.Driver(), cfg.DatabaseFilePath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.DatabaseBusyTimeout.Milliseconds()),
	}
	sqldb := sql.OpenDB(newConnector(connector, pragmas, cfg.DatabaseMaxRetries))

	// SQLite allows a single writer. One connection serializes everything and
	// also keeps an in-memory database alive for the lifetime of the pool.
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)
	sqldb.SetConnMaxLifetime(0)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	if cfg.DatabaseDebug {
		db.AddQueryHook(&logQueryHook{logger.NewWithLevel("debug")})
	}

	// Retry up to a few times to ensure that the database can connect.
	for i := 0; i < cfg.DatabaseConnectRetryCount; i++ {
		_, err = db.Exec("SELECT 1")
		if err != nil {
			time.Sleep(cfg.DatabaseConnectRetryDelay)
			continue
		}
		break
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if cfg.DatabaseFilePath != ":memory:" {
		// WAL mode allows concurrent readers from other processes during writes.
		_, err = db.Exec("PRAGMA journal_mode=WAL")
		if err != nil {
			return nil, errors.Wrap(err, "failed to enable WAL mode")
		}
	}

	return db, nil
}
