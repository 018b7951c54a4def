package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (ports.WriteResult, error) {
	const query = `
        INSERT INTO users (id, name, password_hash, password_salt)
        VALUES ($1, $2, $3, $4)
    `
	res, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.PasswordHash, user.PasswordSalt)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return insertResult(res)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT id, name, password_hash, password_salt, created_at, updated_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	const query = `
        SELECT id, name, password_hash, password_salt, created_at, updated_at
        FROM users
        WHERE name = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, name); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, name, password_hash, password_salt, created_at, updated_at
        FROM users
        ORDER BY id
    `
	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, name string, passwordHash, passwordSalt []byte) (ports.WriteResult, error) {
	const query = `
        UPDATE users
        SET name = $2,
            password_hash = $3,
            password_salt = $4,
            updated_at = NOW()
        WHERE id = $1
    `
	res, err := r.db.ExecContext(ctx, query, id, name, passwordHash, passwordSalt)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return updateResult(res)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (ports.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return deleteResult(res)
}
