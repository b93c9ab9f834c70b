package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE authors (
				author_id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				version INTEGER NOT NULL DEFAULT 1,
				author_name VARCHAR(100) NOT NULL,
				biography VARCHAR(200) NOT NULL DEFAULT '',
				image_url TEXT
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE genres (
				genre_id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				version INTEGER NOT NULL DEFAULT 1,
				genre_name VARCHAR(100) NOT NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE books (
				book_id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				version INTEGER NOT NULL DEFAULT 1,
				title VARCHAR(100) NOT NULL,
				price REAL NOT NULL CHECK (price >= 0 AND price <= 999.99),
				publication_date DATE NOT NULL,
				image_url TEXT,
				author_id INTEGER REFERENCES authors (author_id) ON DELETE CASCADE NOT NULL,
				genre_id INTEGER REFERENCES genres (genre_id) ON DELETE CASCADE NOT NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_books_author_id ON books (author_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_books_genre_id ON books (genre_id)`)
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec("DROP TABLE IF EXISTS books")
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec("DROP TABLE IF EXISTS genres")
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec("DROP TABLE IF EXISTS authors")
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
