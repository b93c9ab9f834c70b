package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Author struct {
	bun.BaseModel `bun:"table:authors,alias:a"`

	ID        int       `bun:"author_id,pk,nullzero" json:"author_id"`
	Name      string    `bun:"author_name,notnull" json:"author_name"`
	Biography string    `bun:"biography,notnull" json:"biography"`
	ImageURL  *string   `bun:"image_url" json:"image_url"`
	Version   int       `bun:"version,notnull" json:"-"`
	CreatedAt time.Time `bun:",notnull" json:"created_at"`
	UpdatedAt time.Time `bun:",notnull" json:"updated_at"`
}

func (a *Author) EntityID() int          { return a.ID }
func (a *Author) SetEntityID(id int)     { a.ID = id }
func (a *Author) EntityVersion() int     { return a.Version }
func (a *Author) SetEntityVersion(v int) { a.Version = v }
func (a *Author) Touch(now time.Time)    { touch(&a.CreatedAt, &a.UpdatedAt, now) }
