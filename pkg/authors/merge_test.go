package authors

import (
	"testing"

	"github.com/bookstoreapi/bookstore/pkg/models"
	"github.com/bookstoreapi/bookstore/pkg/patch"
	"github.com/stretchr/testify/assert"
)

func TestMergeAuthor(t *testing.T) {
	t.Parallel()

	base := models.Author{ID: 1, Name: "Ursula K. Le Guin", Biography: "Original"}

	tests := []struct {
		name     string
		params   UpdateAuthorPayload
		wantName string
		wantBio  string
		changed  bool
	}{
		{"nothing provided", UpdateAuthorPayload{ID: 1}, "Ursula K. Le Guin", "Original", false},
		{"biography only", UpdateAuthorPayload{ID: 1, Biography: patch.Set("Updated bio")}, "Ursula K. Le Guin", "Updated bio", true},
		{"empty name is ignored", UpdateAuthorPayload{ID: 1, Name: patch.Set("")}, "Ursula K. Le Guin", "Original", false},
		{"null name is ignored", UpdateAuthorPayload{ID: 1, Name: patch.Null[string]()}, "Ursula K. Le Guin", "Original", false},
		{"null biography clears", UpdateAuthorPayload{ID: 1, Biography: patch.Null[string]()}, "Ursula K. Le Guin", "", true},
		{"both", UpdateAuthorPayload{ID: 1, Name: patch.Set("U. K. Le Guin"), Biography: patch.Set("b")}, "U. K. Le Guin", "b", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(tt *testing.T) {
			author := base
			changed := mergeAuthor(&author, tc.params)
			assert.Equal(tt, tc.changed, changed)
			assert.Equal(tt, tc.wantName, author.Name)
			assert.Equal(tt, tc.wantBio, author.Biography)
		})
	}
}
