package books

import (
	"context"
	"mime/multipart"

	"github.com/bookstoreapi/bookstore/pkg/errcodes"
	"github.com/bookstoreapi/bookstore/pkg/images"
	"github.com/bookstoreapi/bookstore/pkg/models"
	"github.com/bookstoreapi/bookstore/pkg/store"
	"github.com/samber/lo"
)

type Service struct {
	repo    *store.Repository[models.Book, *models.Book]
	authors *store.Repository[models.Author, *models.Author]
	genres  *store.Repository[models.Genre, *models.Genre]
	images  images.Store
}

func NewService(imageStore images.Store) *Service {
	return &Service{
		repo:    store.NewRepository[models.Book]("Book", "Author", "Genre"),
		authors: store.NewRepository[models.Author]("Author"),
		genres:  store.NewRepository[models.Genre]("Genre"),
		images:  imageStore,
	}
}

func (svc *Service) ListBooks(ctx context.Context, uow *store.UnitOfWork) ([]*models.Book, error) {
	return svc.repo.ListAll(ctx, uow)
}

func (svc *Service) RetrieveBook(ctx context.Context, uow *store.UnitOfWork, id int) (*models.Book, error) {
	return svc.repo.GetByID(ctx, uow, id)
}

// checkReferences fails with an invalid reference error when the author or
// genre doesn't exist.
func (svc *Service) checkReferences(ctx context.Context, uow *store.UnitOfWork, authorID, genreID int) error {
	exists, err := svc.authors.Exists(ctx, uow, authorID)
	if err != nil {
		return err
	}
	if !exists {
		return errcodes.InvalidReference(svc.authors.Resource(), authorID)
	}

	exists, err = svc.genres.Exists(ctx, uow, genreID)
	if err != nil {
		return err
	}
	if !exists {
		return errcodes.InvalidReference(svc.genres.Resource(), genreID)
	}
	return nil
}

// CreateBook inserts book and reloads it so that the author and genre are
// populated.
func (svc *Service) CreateBook(ctx context.Context, uow *store.UnitOfWork, book *models.Book, image *multipart.FileHeader) error {
	book.Price = roundPrice(book.Price)

	if err := svc.checkReferences(ctx, uow, book.AuthorID, book.GenreID); err != nil {
		return err
	}

	if image != nil {
		url, err := images.SaveUpload(ctx, svc.images, image)
		if err != nil {
			return err
		}
		book.ImageURL = lo.ToPtr(url)
	}

	if err := svc.repo.Insert(ctx, uow, book); err != nil {
		return err
	}

	created, err := svc.repo.GetByID(ctx, uow, book.ID)
	if err != nil {
		return err
	}
	*book = *created
	return nil
}

func (svc *Service) UpdateBook(ctx context.Context, uow *store.UnitOfWork, id int, params UpdateBookPayload) error {
	return svc.repo.Update(ctx, uow, id, params.ID, func(ctx context.Context, book *models.Book) (bool, error) {
		authorID, genreID := book.AuthorID, book.GenreID

		changed := mergeBook(book, params)

		if book.AuthorID != authorID || book.GenreID != genreID {
			if err := svc.checkReferences(ctx, uow, book.AuthorID, book.GenreID); err != nil {
				return false, err
			}
		}

		if image := imageFile(params.FormFiles); image != nil {
			url, err := images.SaveUpload(ctx, svc.images, image)
			if err != nil {
				return false, err
			}
			if lo.FromPtr(book.ImageURL) != url {
				book.ImageURL = lo.ToPtr(url)
				changed = true
			}
		}

		return changed, nil
	})
}

func (svc *Service) DeleteBook(ctx context.Context, uow *store.UnitOfWork, id int) error {
	return svc.repo.Delete(ctx, uow, id)
}
