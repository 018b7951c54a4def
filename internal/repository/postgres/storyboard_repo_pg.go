package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

type StoryboardRepository struct {
	db *sqlx.DB
}

func NewStoryboardRepo(db *sqlx.DB) *StoryboardRepository {
	return &StoryboardRepository{db: db}
}

const storyboardColumns = `id, project_id, category_id, description, image_url, created_at, updated_at`

func (r *StoryboardRepository) Insert(ctx context.Context, storyboard *domain.Storyboard) (ports.WriteResult, error) {
	const query = `
        INSERT INTO storyboards (id, project_id, category_id, description)
        VALUES ($1, $2, $3, $4)
    `
	res, err := r.db.ExecContext(ctx, query, storyboard.ID, storyboard.ProjectID, storyboard.CategoryID, storyboard.Description)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return insertResult(res)
}

func (r *StoryboardRepository) FindByID(ctx context.Context, id int64) (*domain.Storyboard, error) {
	query := `SELECT ` + storyboardColumns + ` FROM storyboards WHERE id = $1`
	var storyboard domain.Storyboard
	if err := r.db.GetContext(ctx, &storyboard, query, id); err != nil {
		return nil, err
	}
	return &storyboard, nil
}

func (r *StoryboardRepository) List(ctx context.Context, filter domain.StoryboardListFilter) ([]domain.Storyboard, error) {
	query := `SELECT ` + storyboardColumns + ` FROM storyboards`
	var params []any
	if filter.ProjectID != nil {
		query += ` WHERE project_id = $1`
		params = append(params, *filter.ProjectID)
	}
	query += " ORDER BY id"

	var storyboards []domain.Storyboard
	if err := r.db.SelectContext(ctx, &storyboards, query, params...); err != nil {
		return nil, err
	}
	return storyboards, nil
}

func (r *StoryboardRepository) Update(ctx context.Context, id, categoryID int64, description string) (ports.WriteResult, error) {
	const query = `
        UPDATE storyboards
        SET category_id = $2,
            description = $3,
            updated_at = NOW()
        WHERE id = $1
    `
	res, err := r.db.ExecContext(ctx, query, id, categoryID, description)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return updateResult(res)
}

func (r *StoryboardRepository) UpdateImage(ctx context.Context, id int64, imageURL string) (ports.WriteResult, error) {
	const query = `
        UPDATE storyboards
        SET image_url = $2,
            updated_at = NOW()
        WHERE id = $1
    `
	res, err := r.db.ExecContext(ctx, query, id, imageURL)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return updateResult(res)
}

func (r *StoryboardRepository) Delete(ctx context.Context, id int64) (ports.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM storyboards WHERE id = $1`, id)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return deleteResult(res)
}
