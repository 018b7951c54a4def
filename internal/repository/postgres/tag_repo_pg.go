package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

type TagRepository struct {
	db *sqlx.DB
}

func NewTagRepo(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Insert(ctx context.Context, tag *domain.Tag) (ports.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO tags (id, name) VALUES ($1, $2)`, tag.ID, tag.Name)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return insertResult(res)
}

func (r *TagRepository) FindByID(ctx context.Context, id int64) (*domain.Tag, error) {
	const query = `
        SELECT id, name, created_at, updated_at
        FROM tags
        WHERE id = $1
    `
	var tag domain.Tag
	if err := r.db.GetContext(ctx, &tag, query, id); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := r.db.SelectContext(ctx, &tags, `SELECT id, name, created_at, updated_at FROM tags ORDER BY id`); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagRepository) Update(ctx context.Context, id int64, name string) (ports.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE tags SET name = $2, updated_at = NOW() WHERE id = $1`, id, name)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return updateResult(res)
}

func (r *TagRepository) Delete(ctx context.Context, id int64) (ports.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return deleteResult(res)
}
