package ports

import (
	"context"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
)

type ProjectRepository interface {
	Insert(ctx context.Context, project *domain.Project) (WriteResult, error)
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectListFilter) ([]domain.Project, error)
	Update(ctx context.Context, id int64, title, description, tag string) (WriteResult, error)
	Delete(ctx context.Context, id int64) (WriteResult, error)
}
