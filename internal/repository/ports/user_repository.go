package ports

import (
	"context"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
)

type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (WriteResult, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, name string, passwordHash, passwordSalt []byte) (WriteResult, error)
	Delete(ctx context.Context, id int64) (WriteResult, error)
}
