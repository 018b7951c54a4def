package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepo(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, title, description, tag, user_id, created_at, updated_at`

func (r *ProjectRepository) Insert(ctx context.Context, project *domain.Project) (ports.WriteResult, error) {
	const query = `
        INSERT INTO projects (id, title, description, tag, user_id)
        VALUES ($1, $2, $3, $4, $5)
    `
	res, err := r.db.ExecContext(ctx, query, project.ID, project.Title, project.Description, project.Tag, project.UserID)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return insertResult(res)
}

func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	var project domain.Project
	if err := r.db.GetContext(ctx, &project, query, id); err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context, filter domain.ProjectListFilter) ([]domain.Project, error) {
	var (
		conditions []string
		params     []any
	)
	if filter.UserID != nil {
		params = append(params, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(params)))
	}
	if len(filter.Tags) > 0 {
		params = append(params, pq.StringArray(filter.Tags))
		conditions = append(conditions, fmt.Sprintf("tag = ANY($%d)", len(params)))
	}

	query := `SELECT ` + projectColumns + ` FROM projects`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	var projects []domain.Project
	if err := r.db.SelectContext(ctx, &projects, query, params...); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id int64, title, description, tag string) (ports.WriteResult, error) {
	const query = `
        UPDATE projects
        SET title = $2,
            description = $3,
            tag = $4,
            updated_at = NOW()
        WHERE id = $1
    `
	res, err := r.db.ExecContext(ctx, query, id, title, description, tag)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return updateResult(res)
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) (ports.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return deleteResult(res)
}
