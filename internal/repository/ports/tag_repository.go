package ports

import (
	"context"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
)

type TagRepository interface {
	Insert(ctx context.Context, tag *domain.Tag) (WriteResult, error)
	FindByID(ctx context.Context, id int64) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Update(ctx context.Context, id int64, name string) (WriteResult, error)
	Delete(ctx context.Context, id int64) (WriteResult, error)
}
