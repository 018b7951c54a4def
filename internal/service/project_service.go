package service

import (
	"context"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

type ProjectService struct {
	projects ports.ProjectRepository
}

func NewProjectService(projects ports.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) Create(ctx context.Context, id int64, title, desc, tag string, userID int64) (*domain.Project, error) {
	if !domain.IsAddProjectValid(id, title, desc, tag, userID) {
		return nil, domain.NewValidationError("project requires non-negative id and userId and a title, description and tag")
	}

	res, err := s.projects.Insert(ctx, &domain.Project{
		ID:          id,
		Title:       title,
		Description: desc,
		Tag:         tag,
		UserID:      userID,
	})
	if err := checkInsert("insert project", res, err); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return findOne(ctx, "find project", id, s.projects.FindByID)
}

func (s *ProjectService) List(ctx context.Context, filter domain.ProjectListFilter) ([]domain.Project, error) {
	projects, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, storageFailure("list projects", err)
	}
	return projects, nil
}

func (s *ProjectService) Update(ctx context.Context, id int64, newTitle, newDesc, newTag string) (*domain.Project, error) {
	if !domain.IsUpdateProjectValid(id, newTitle, newDesc, newTag) {
		return nil, domain.NewValidationError("project update requires a non-negative id and a new title, description and tag")
	}

	res, err := s.projects.Update(ctx, id, newTitle, newDesc, newTag)
	if err := checkUpdate("update project", res, err); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, id int64) (*domain.Project, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := s.projects.Delete(ctx, id)
	if err := checkDelete("delete project", res, err); err != nil {
		return nil, err
	}
	return existing, nil
}
