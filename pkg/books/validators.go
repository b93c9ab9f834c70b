package books

import (
	"mime/multipart"

	"github.com/bookstoreapi/bookstore/pkg/models"
	"github.com/bookstoreapi/bookstore/pkg/patch"
)

type CreateBookPayload struct {
	Title           string      `json:"title" form:"title" mod:"trim" validate:"required,max=100"`
	Price           *float64    `json:"price" form:"price" validate:"required,min=0,max=999.99"`
	PublicationDate models.Date `json:"publication_date" form:"publication_date" validate:"required"`
	AuthorID        int         `json:"author_id" form:"author_id" validate:"required"`
	GenreID         int         `json:"genre_id" form:"genre_id" validate:"required"`

	FormFiles map[string]*multipart.FileHeader `json:"-" form:"-"`
}

type UpdateBookPayload struct {
	ID              int                      `json:"book_id" form:"book_id"`
	Title           patch.Field[string]      `json:"title" form:"title" validate:"omitempty,max=100"`
	Price           patch.Field[float64]     `json:"price" form:"price" validate:"omitempty,min=0,max=999.99"`
	PublicationDate patch.Field[models.Date] `json:"publication_date" form:"publication_date"`
	AuthorID        patch.Field[int]         `json:"author_id" form:"author_id" validate:"omitempty,gt=0"`
	GenreID         patch.Field[int]         `json:"genre_id" form:"genre_id" validate:"omitempty,gt=0"`

	FormFiles map[string]*multipart.FileHeader `json:"-" form:"-"`
}

func imageFile(files map[string]*multipart.FileHeader) *multipart.FileHeader {
	if fh, ok := files["image"]; ok && fh.Size > 0 {
		return fh
	}
	return nil
}
