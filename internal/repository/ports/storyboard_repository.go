package ports

import (
	"context"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
)

type StoryboardRepository interface {
	Insert(ctx context.Context, storyboard *domain.Storyboard) (WriteResult, error)
	FindByID(ctx context.Context, id int64) (*domain.Storyboard, error)
	List(ctx context.Context, filter domain.StoryboardListFilter) ([]domain.Storyboard, error)
	Update(ctx context.Context, id, categoryID int64, description string) (WriteResult, error)
	UpdateImage(ctx context.Context, id int64, imageURL string) (WriteResult, error)
	Delete(ctx context.Context, id int64) (WriteResult, error)
}
