package books

import (
	"math"

	"github.com/bookstoreapi/bookstore/pkg/models"
	"github.com/bookstoreapi/bookstore/pkg/patch"
)

// roundPrice rounds to whole cents.
func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}

// mergeBook applies the patch fields to book and reports whether anything
// changed. Null values are ignored for every field.
func mergeBook(book *models.Book, params UpdateBookPayload) bool {
	changed := patch.MergeRequired(&book.Title, params.Title)

	if price, ok := params.Price.Get(); ok {
		price = roundPrice(price)
		if price != book.Price {
			book.Price = price
			changed = true
		}
	}

	if date, ok := params.PublicationDate.Get(); ok && !date.Equal(book.PublicationDate.Time) {
		book.PublicationDate = date
		changed = true
	}

	if patch.MergeValue(&book.AuthorID, params.AuthorID) {
		book.Author = nil
		changed = true
	}
	if patch.MergeValue(&book.GenreID, params.GenreID) {
		book.Genre = nil
		changed = true
	}

	return changed
}
