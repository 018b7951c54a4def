package ports

import (
	"context"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
)

type TaskLogRepository interface {
	Insert(ctx context.Context, taskLog *domain.TaskLog) (WriteResult, error)
	FindByID(ctx context.Context, id int64) (*domain.TaskLog, error)
	List(ctx context.Context, filter domain.TaskLogListFilter) ([]domain.TaskLog, error)
	Update(ctx context.Context, id int64, issue string, isResolved bool) (WriteResult, error)
	Delete(ctx context.Context, id int64) (WriteResult, error)
}
