package genres

import (
	"context"

	"github.com/bookstoreapi/bookstore/pkg/models"
	"github.com/bookstoreapi/bookstore/pkg/store"
)

type Service struct {
	repo *store.Repository[models.Genre, *models.Genre]
}

func NewService() *Service {
	return &Service{store.NewRepository[models.Genre]("Genre")}
}

func (svc *Service) ListGenres(ctx context.Context, uow *store.UnitOfWork) ([]*models.Genre, error) {
	return svc.repo.ListAll(ctx, uow)
}

func (svc *Service) RetrieveGenre(ctx context.Context, uow *store.UnitOfWork, id int) (*models.Genre, error) {
	return svc.repo.GetByID(ctx, uow, id)
}

func (svc *Service) CreateGenre(ctx context.Context, uow *store.UnitOfWork, genre *models.Genre) error {
	return svc.repo.Insert(ctx, uow, genre)
}

func (svc *Service) UpdateGenre(ctx context.Context, uow *store.UnitOfWork, id int, params UpdateGenrePayload) error {
	return svc.repo.Update(ctx, uow, id, params.ID, func(_ context.Context, genre *models.Genre) (bool, error) {
		return mergeGenre(genre, params), nil
	})
}

// DeleteGenre removes the genre along with every book in it.
func (svc *Service) DeleteGenre(ctx context.Context, uow *store.UnitOfWork, id int) error {
	return svc.repo.Delete(ctx, uow, id)
}
