package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(ctx context.Context, db *bun.DB) error {
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO authors (author_id, author_name, biography) VALUES
					(1, 'J.K. Rowling', 'British author, best known for the Harry Potter series.'),
					(2, 'J.R.R. Tolkien', 'English writer and professor, known for The Hobbit and The Lord of the Rings.')
`)
			if err != nil {
				return errors.WithStack(err)
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO genres (genre_id, genre_name) VALUES
					(1, 'Fantasy'),
					(2, 'Science Fiction')
`)
			if err != nil {
				return errors.WithStack(err)
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO books (book_id, title, price, publication_date, author_id, genre_id) VALUES
					(1, 'Harry Potter and the Sorcerer''s Stone', 19.99, '1997-06-26', 1, 1),
					(2, 'The Hobbit', 14.99, '1937-09-21', 2, 1)
`)
			return errors.WithStack(err)
		})
	}

	down := func(ctx context.Context, db *bun.DB) error {
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			_, err := tx.ExecContext(ctx, "DELETE FROM books WHERE book_id IN (1, 2)")
			if err != nil {
				return errors.WithStack(err)
			}
			_, err = tx.ExecContext(ctx, "DELETE FROM genres WHERE genre_id IN (1, 2)")
			if err != nil {
				return errors.WithStack(err)
			}
			_, err = tx.ExecContext(ctx, "DELETE FROM authors WHERE author_id IN (1, 2)")
			return errors.WithStack(err)
		})
	}

	Migrations.MustRegister(up, down)
}
