package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID              int       `bun:"book_id,pk,nullzero" json:"book_id"`
	Title           string    `bun:"title,notnull" json:"title"`
	Price           float64   `bun:"price,notnull" json:"price"`
	PublicationDate Date      `bun:"publication_date,notnull,type:date" json:"publication_date"`
	ImageURL        *string   `bun:"image_url" json:"image_url"`
	AuthorID        int       `bun:"author_id,notnull" json:"author_id"`
	Author          *Author   `bun:"rel:belongs-to,join:author_id=author_id" json:"author,omitempty"`
	GenreID         int       `bun:"genre_id,notnull" json:"genre_id"`
	Genre           *Genre    `bun:"rel:belongs-to,join:genre_id=genre_id" json:"genre,omitempty"`
	Version         int       `bun:"version,notnull" json:"-"`
	CreatedAt       time.Time `bun:",notnull" json:"created_at"`
	UpdatedAt       time.Time `bun:",notnull" json:"updated_at"`
}

func (b *Book) EntityID() int          { return b.ID }
func (b *Book) SetEntityID(id int)     { b.ID = id }
func (b *Book) EntityVersion() int     { return b.Version }
func (b *Book) SetEntityVersion(v int) { b.Version = v }
func (b *Book) Touch(now time.Time)    { touch(&b.CreatedAt, &b.UpdatedAt, now) }

func touch(createdAt, updatedAt *time.Time, now time.Time) {
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}
