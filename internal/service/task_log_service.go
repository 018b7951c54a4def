package service

import (
	"context"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

type TaskLogService struct {
	taskLogs ports.TaskLogRepository
}

func NewTaskLogService(taskLogs ports.TaskLogRepository) *TaskLogService {
	return &TaskLogService{taskLogs: taskLogs}
}

// Create records a new, unresolved task log.
func (s *TaskLogService) Create(ctx context.Context, id int64, issue string, projectID int64) (*domain.TaskLog, error) {
	if !domain.IsAddTaskLogValid(id, issue, projectID) {
		return nil, domain.NewValidationError("task log requires non-negative id and projectId and an issue")
	}
	res, err := s.taskLogs.Insert(ctx, &domain.TaskLog{ID: id, Issue: issue, ProjectID: projectID})
	if err := checkInsert("insert task log", res, err); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *TaskLogService) Get(ctx context.Context, id int64) (*domain.TaskLog, error) {
	return findOne(ctx, "find task log", id, s.taskLogs.FindByID)
}

func (s *TaskLogService) List(ctx context.Context, filter domain.TaskLogListFilter) ([]domain.TaskLog, error) {
	taskLogs, err := s.taskLogs.List(ctx, filter)
	if err != nil {
		return nil, storageFailure("list task logs", err)
	}
	return taskLogs, nil
}

func (s *TaskLogService) Update(ctx context.Context, id int64, newIssue string, isResolved bool) (*domain.TaskLog, error) {
	if !domain.IsUpdateTaskLogValid(id, newIssue, isResolved) {
		return nil, domain.NewValidationError("task log update requires a non-negative id and an issue")
	}
	res, err := s.taskLogs.Update(ctx, id, newIssue, isResolved)
	if err := checkUpdate("update task log", res, err); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *TaskLogService) Delete(ctx context.Context, id int64) (*domain.TaskLog, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := s.taskLogs.Delete(ctx, id)
	if err := checkDelete("delete task log", res, err); err != nil {
		return nil, err
	}
	return existing, nil
}
