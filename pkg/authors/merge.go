package authors

import (
	"github.com/bookstoreapi/bookstore/pkg/models"
	"github.com/bookstoreapi/bookstore/pkg/patch"
)

// mergeAuthor applies the patch fields to author. A null biography clears it;
// the name can only be replaced.
func mergeAuthor(author *models.Author, params UpdateAuthorPayload) bool {
	changed := patch.MergeRequired(&author.Name, params.Name)
	changed = patch.MergeOptional(&author.Biography, params.Biography) || changed
	return changed
}
