package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Genre struct {
	bun.BaseModel `bun:"table:genres,alias:g"`

	ID        int       `bun:"genre_id,pk,nullzero" json:"genre_id"`
	Name      string    `bun:"genre_name,notnull" json:"genre_name"`
	Version   int       `bun:"version,notnull" json:"-"`
	CreatedAt time.Time `bun:",notnull" json:"created_at"`
	UpdatedAt time.Time `bun:",notnull" json:"updated_at"`
}

func (g *Genre) EntityID() int          { return g.ID }
func (g *Genre) SetEntityID(id int)     { g.ID = id }
func (g *Genre) EntityVersion() int     { return g.Version }
func (g *Genre) SetEntityVersion(v int) { g.Version = v }
func (g *Genre) Touch(now time.Time)    { touch(&g.CreatedAt, &g.UpdatedAt, now) }
