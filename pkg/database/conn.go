package database

import (
	"context"
	"database/sql/driver"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	baseRetryDelay = 50 * time.Millisecond
	maxRetryDelay  = 2 * time.Second
)

// connector applies connection-level pragmas to each new SQLite connection and
// wraps it so that SQLITE_BUSY errors are retried.
type connector struct {
	base       driver.Connector
	pragmas    []string
	maxRetries int
}

func newConnector(base driver.Connector, pragmas []string, maxRetries int) *connector {
	return &connector{base: base, pragmas: pragmas, maxRetries: maxRetries}
}

func (c *connector) Connect(ctx context.Context) (driver.Conn, error) {
	conn, err := c.base.Connect(ctx)
	if err != nil {
		return nil, err
	}
	for _, pragma := range c.pragmas {
		if err := execOnConn(ctx, conn, pragma); err != nil {
			conn.Close()
			return nil, errors.Wrapf(err, "failed to run %q", pragma)
		}
	}
	return &busyConn{conn: conn, maxRetries: c.maxRetries}, nil
}

func (c *connector) Driver() driver.Driver {
	return c.base.Driver()
}

type dsnConnector struct {
	dsn string
	drv driver.Driver
}

func (c dsnConnector) Connect(_ context.Context) (driver.Conn, error) {
	return c.drv.Open(c.dsn)
}

func (c dsnConnector) Driver() driver.Driver {
	return c.drv
}

func openConnector(drv driver.Driver, dsn string) (driver.Connector, error) {
	if dc, ok := drv.(driver.DriverContext); ok {
		return dc.OpenConnector(dsn)
	}
	return dsnConnector{dsn: dsn, drv: drv}, nil
}

func execOnConn(ctx context.Context, conn driver.Conn, query string) error {
	if execer, ok := conn.(driver.ExecerContext); ok {
		_, err := execer.ExecContext(ctx, query, nil)
		return err
	}
	stmt, err := conn.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()
	_, err = stmt.Exec(nil) //nolint:staticcheck // fallback for drivers without ExecerContext
	return err
}

// isBusyError reports whether err is SQLITE_BUSY or SQLITE_LOCKED for either
// mattn/go-sqlite3 or modernc.org/sqlite.
func isBusyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "SQLITE_BUSY") ||
		strings.Contains(msg, "SQLITE_LOCKED")
}

// withRetry runs fn until it succeeds, fails with a non-busy error, or the
// retries run out. Delays grow exponentially with up to 25% jitter.
func withRetry(ctx context.Context, maxRetries int, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		if !isBusyError(err) || attempt >= maxRetries {
			return err
		}

		delay := baseRetryDelay << attempt
		delay += time.Duration(rand.Int63n(int64(delay/4) + 1))
		if delay > maxRetryDelay {
			delay = maxRetryDelay
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

type busyConn struct {
	conn       driver.Conn
	maxRetries int
}

func (c *busyConn) Prepare(query string) (driver.Stmt, error) {
	return c.PrepareContext(context.Background(), query)
}

func (c *busyConn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	if p, ok := c.conn.(driver.ConnPrepareContext); ok {
		return p.PrepareContext(ctx, query)
	}
	return c.conn.Prepare(query)
}

func (c *busyConn) Close() error {
	return c.conn.Close()
}

func (c *busyConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *busyConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	var tx driver.Tx
	err := withRetry(ctx, c.maxRetries, func() error {
		var err error
		if b, ok := c.conn.(driver.ConnBeginTx); ok {
			tx, err = b.BeginTx(ctx, opts)
		} else {
			tx, err = c.conn.Begin() //nolint:staticcheck // fallback for drivers without ConnBeginTx
		}
		return err
	})
	return tx, err
}

func (c *busyConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	execer, ok := c.conn.(driver.ExecerContext)
	if !ok {
		return nil, driver.ErrSkip
	}
	var res driver.Result
	err := withRetry(ctx, c.maxRetries, func() error {
		var err error
		res, err = execer.ExecContext(ctx, query, args)
		return err
	})
	return res, err
}

func (c *busyConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	queryer, ok := c.conn.(driver.QueryerContext)
	if !ok {
		return nil, driver.ErrSkip
	}
	var rows driver.Rows
	err := withRetry(ctx, c.maxRetries, func() error {
		var err error
		rows, err = queryer.QueryContext(ctx, query, args)
		return err
	})
	return rows, err
}

func (c *busyConn) Ping(ctx context.Context) error {
	if p, ok := c.conn.(driver.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (c *busyConn) ResetSession(ctx context.Context) error {
	if r, ok := c.conn.(driver.SessionResetter); ok {
		return r.ResetSession(ctx)
	}
	return nil
}

func (c *busyConn) IsValid() bool {
	if v, ok := c.conn.(driver.Validator); ok {
		return v.IsValid()
	}
	return true
}

func (c *busyConn) CheckNamedValue(nv *driver.NamedValue) error {
	if checker, ok := c.conn.(driver.NamedValueChecker); ok {
		return checker.CheckNamedValue(nv)
	}
	return driver.ErrSkip
}
