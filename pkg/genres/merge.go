package genres

import (
	"github.com/bookstoreapi/bookstore/pkg/models"
	"github.com/bookstoreapi/bookstore/pkg/patch"
)

func mergeGenre(genre *models.Genre, params UpdateGenrePayload) bool {
	return patch.MergeRequired(&genre.Name, params.Name)
}
