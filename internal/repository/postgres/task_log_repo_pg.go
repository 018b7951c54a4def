package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

type TaskLogRepository struct {
	db *sqlx.DB
}

func NewTaskLogRepo(db *sqlx.DB) *TaskLogRepository {
	return &TaskLogRepository{db: db}
}

const taskLogColumns = `id, issue, project_id, is_resolved, created_at, updated_at`

func (r *TaskLogRepository) Insert(ctx context.Context, taskLog *domain.TaskLog) (ports.WriteResult, error) {
	const query = `
        INSERT INTO task_logs (id, issue, project_id, is_resolved)
        VALUES ($1, $2, $3, $4)
    `
	res, err := r.db.ExecContext(ctx, query, taskLog.ID, taskLog.Issue, taskLog.ProjectID, taskLog.IsResolved)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return insertResult(res)
}

func (r *TaskLogRepository) FindByID(ctx context.Context, id int64) (*domain.TaskLog, error) {
	query := `SELECT ` + taskLogColumns + ` FROM task_logs WHERE id = $1`
	var taskLog domain.TaskLog
	if err := r.db.GetContext(ctx, &taskLog, query, id); err != nil {
		return nil, err
	}
	return &taskLog, nil
}

func (r *TaskLogRepository) List(ctx context.Context, filter domain.TaskLogListFilter) ([]domain.TaskLog, error) {
	var (
		conditions []string
		params     []any
	)
	if filter.ProjectID != nil {
		params = append(params, *filter.ProjectID)
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", len(params)))
	}
	if filter.Resolved != nil {
		params = append(params, *filter.Resolved)
		conditions = append(conditions, fmt.Sprintf("is_resolved = $%d", len(params)))
	}

	query := `SELECT ` + taskLogColumns + ` FROM task_logs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	var taskLogs []domain.TaskLog
	if err := r.db.SelectContext(ctx, &taskLogs, query, params...); err != nil {
		return nil, err
	}
	return taskLogs, nil
}

func (r *TaskLogRepository) Update(ctx context.Context, id int64, issue string, isResolved bool) (ports.WriteResult, error) {
	const query = `
        UPDATE task_logs
        SET issue = $2,
            is_resolved = $3,
            updated_at = NOW()
        WHERE id = $1
    `
	res, err := r.db.ExecContext(ctx, query, id, issue, isResolved)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return updateResult(res)
}

func (r *TaskLogRepository) Delete(ctx context.Context, id int64) (ports.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM task_logs WHERE id = $1`, id)
	if err != nil {
		return ports.WriteResult{}, err
	}
	return deleteResult(res)
}
