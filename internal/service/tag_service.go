package service

import (
	"context"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

type TagService struct {
	tags ports.TagRepository
}

func NewTagService(tags ports.TagRepository) *TagService {
	return &TagService{tags: tags}
}

func (s *TagService) Create(ctx context.Context, id int64, name string) (*domain.Tag, error) {
	if !domain.IsTagValid(id, name) {
		return nil, domain.NewValidationError("tag requires a non-negative id and a name")
	}
	res, err := s.tags.Insert(ctx, &domain.Tag{ID: id, Name: name})
	if err := checkInsert("insert tag", res, err); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *TagService) Get(ctx context.Context, id int64) (*domain.Tag, error) {
	return findOne(ctx, "find tag", id, s.tags.FindByID)
}

func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, storageFailure("list tags", err)
	}
	return tags, nil
}

func (s *TagService) Update(ctx context.Context, id int64, newName string) (*domain.Tag, error) {
	if !domain.IsTagValid(id, newName) {
		return nil, domain.NewValidationError("tag update requires a non-negative id and a new name")
	}
	res, err := s.tags.Update(ctx, id, newName)
	if err := checkUpdate("update tag", res, err); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *TagService) Delete(ctx context.Context, id int64) (*domain.Tag, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := s.tags.Delete(ctx, id)
	if err := checkDelete("delete tag", res, err); err != nil {
		return nil, err
	}
	return existing, nil
}
