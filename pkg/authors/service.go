package authors

import (
	"context"
	"mime/multipart"

	"github.com/bookstoreapi/bookstore/pkg/images"
	"github.com/bookstoreapi/bookstore/pkg/models"
	"github.com/bookstoreapi/bookstore/pkg/store"
	"github.com/samber/lo"
)

type Service struct {
	repo   *store.Repository[models.Author, *models.Author]
	images images.Store
}

func NewService(imageStore images.Store) *Service {
	return &Service{
		repo:   store.NewRepository[models.Author]("Author"),
		images: imageStore,
	}
}

func (svc *Service) ListAuthors(ctx context.Context, uow *store.UnitOfWork) ([]*models.Author, error) {
	return svc.repo.ListAll(ctx, uow)
}

func (svc *Service) RetrieveAuthor(ctx context.Context, uow *store.UnitOfWork, id int) (*models.Author, error) {
	return svc.repo.GetByID(ctx, uow, id)
}

// CreateAuthor stores the optional image first and then inserts the author
// pointing at it.
func (svc *Service) CreateAuthor(ctx context.Context, uow *store.UnitOfWork, author *models.Author, image *multipart.FileHeader) error {
	if image != nil {
		url, err := images.SaveUpload(ctx, svc.images, image)
		if err != nil {
			return err
		}
		author.ImageURL = lo.ToPtr(url)
	}
	return svc.repo.Insert(ctx, uow, author)
}

func (svc *Service) UpdateAuthor(ctx context.Context, uow *store.UnitOfWork, id int, params UpdateAuthorPayload) error {
	return svc.repo.Update(ctx, uow, id, params.ID, func(ctx context.Context, author *models.Author) (bool, error) {
		changed := mergeAuthor(author, params)

		if image := imageFile(params.FormFiles); image != nil {
			url, err := images.SaveUpload(ctx, svc.images, image)
			if err != nil {
				return false, err
			}
			if lo.FromPtr(author.ImageURL) != url {
				author.ImageURL = lo.ToPtr(url)
				changed = true
			}
		}

		return changed, nil
	})
}

// DeleteAuthor removes the author along with every book they wrote.
func (svc *Service) DeleteAuthor(ctx context.Context, uow *store.UnitOfWork, id int) error {
	return svc.repo.Delete(ctx, uow, id)
}
