package genres

import "github.com/bookstoreapi/bookstore/pkg/patch"

type CreateGenrePayload struct {
	Name string `json:"genre_name" form:"genre_name" mod:"trim" validate:"required,max=100"`
}

type UpdateGenrePayload struct {
	ID   int                 `json:"genre_id" form:"genre_id"`
	Name patch.Field[string] `json:"genre_name" form:"genre_name" validate:"omitempty,max=100"`
}
