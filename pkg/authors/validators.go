package authors

import (
	"mime/multipart"

	"github.com/bookstoreapi/bookstore/pkg/patch"
)

type CreateAuthorPayload struct {
	Name      string `json:"author_name" form:"author_name" mod:"trim" validate:"required,max=100"`
	Biography string `json:"biography" form:"biography" validate:"max=200"`

	FormFiles map[string]*multipart.FileHeader `json:"-" form:"-"`
}

type UpdateAuthorPayload struct {
	ID        int                 `json:"author_id" form:"author_id"`
	Name      patch.Field[string] `json:"author_name" form:"author_name" validate:"omitempty,max=100"`
	Biography patch.Field[string] `json:"biography" form:"biography" validate:"omitempty,max=200"`

	FormFiles map[string]*multipart.FileHeader `json:"-" form:"-"`
}

func imageFile(files map[string]*multipart.FileHeader) *multipart.FileHeader {
	if fh, ok := files["image"]; ok && fh.Size > 0 {
		return fh
	}
	return nil
}
