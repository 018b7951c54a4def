package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/media"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

var ErrImageStorageDisabled = errors.New("storyboard image storage is not configured")

type StoryboardServiceConfig struct {
	Bucket    string
	Storage   ports.ObjectStorage
	Inspector *media.Inspector
	// Logger reports objects that could not be cleaned up; disabled when zero.
	Logger zerolog.Logger
}

type StoryboardService struct {
	storyboards ports.StoryboardRepository
	storage     ports.ObjectStorage
	inspector   *media.Inspector
	bucket      string
	logger      zerolog.Logger
}

func NewStoryboardService(storyboards ports.StoryboardRepository, cfg StoryboardServiceConfig) *StoryboardService {
	inspector := cfg.Inspector
	if inspector == nil {
		inspector = media.NewInspector(0, 0)
	}
	return &StoryboardService{
		storyboards: storyboards,
		storage:     cfg.Storage,
		inspector:   inspector,
		bucket:      cfg.Bucket,
		logger:      cfg.Logger,
	}
}

func (s *StoryboardService) Create(ctx context.Context, id, projectID, categoryID int64, description string) (*domain.Storyboard, error) {
	if !domain.IsAddStoryboardValid(id, projectID, categoryID, description) {
		return nil, domain.NewValidationError("storyboard requires non-negative id, projectId and categoryId and a description")
	}
	res, err := s.storyboards.Insert(ctx, &domain.Storyboard{
		ID:          id,
		ProjectID:   projectID,
		CategoryID:  categoryID,
		Description: description,
	})
	if err := checkInsert("insert storyboard", res, err); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *StoryboardService) Get(ctx context.Context, id int64) (*domain.Storyboard, error) {
	return findOne(ctx, "find storyboard", id, s.storyboards.FindByID)
}

func (s *StoryboardService) List(ctx context.Context, filter domain.StoryboardListFilter) ([]domain.Storyboard, error) {
	storyboards, err := s.storyboards.List(ctx, filter)
	if err != nil {
		return nil, storageFailure("list storyboards", err)
	}
	return storyboards, nil
}

func (s *StoryboardService) Update(ctx context.Context, id, newCategoryID int64, newDescription string) (*domain.Storyboard, error) {
	if !domain.IsUpdateStoryboardValid(id, newCategoryID, newDescription) {
		return nil, domain.NewValidationError("storyboard update requires non-negative id and categoryId and a description")
	}
	res, err := s.storyboards.Update(ctx, id, newCategoryID, newDescription)
	if err := checkUpdate("update storyboard", res, err); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *StoryboardService) Delete(ctx context.Context, id int64) (*domain.Storyboard, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := s.storyboards.Delete(ctx, id)
	if err := checkDelete("delete storyboard", res, err); err != nil {
		return nil, err
	}
	s.removeImage(ctx, existing.ID, existing.ImageURL)
	return existing, nil
}

// UploadImage stores a panel image for the storyboard and records its URL.
func (s *StoryboardService) UploadImage(ctx context.Context, id int64, upload media.Upload) (*domain.Storyboard, error) {
	if s.storage == nil || s.bucket == "" {
		return nil, ErrImageStorageDisabled
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	img, err := s.inspector.Inspect(upload)
	if err != nil {
		return nil, domain.NewValidationError("%v", err)
	}

	objectName := fmt.Sprintf("storyboards/%d/%s%s", id, uuid.NewString(), img.Extension)
	url, err := s.storage.Upload(ctx, s.bucket, objectName, img.ContentType, bytes.NewReader(img.Bytes), int64(len(img.Bytes)))
	if err != nil {
		return nil, domain.NewStorageError("upload storyboard image", err)
	}

	res, err := s.storyboards.UpdateImage(ctx, id, url)
	if err := checkUpdate("update storyboard image", res, err); err != nil {
		s.removeObject(ctx, objectName)
		return nil, err
	}
	s.removeImage(ctx, id, existing.ImageURL)
	return s.Get(ctx, id)
}

// removeImage deletes the object behind a recorded image URL. URLs that
// were not issued for this storyboard are left alone.
func (s *StoryboardService) removeImage(ctx context.Context, id int64, imageURL *string) {
	if imageURL == nil {
		return
	}
	if key, ok := imageObjectKey(id, *imageURL); ok {
		s.removeObject(ctx, key)
	}
}

// removeObject is best effort; failures are logged and otherwise ignored.
func (s *StoryboardService) removeObject(ctx context.Context, key string) {
	if s.storage == nil || s.bucket == "" {
		return
	}
	if err := s.storage.Delete(ctx, s.bucket, key); err != nil {
		s.logger.Warn().Err(err).Str("bucket", s.bucket).Str("object", key).Msg("storyboard image cleanup failed")
	}
}

func imageObjectKey(id int64, imageURL string) (string, bool) {
	prefix := fmt.Sprintf("storyboards/%d/", id)
	i := strings.LastIndex(imageURL, prefix)
	if i < 0 || len(imageURL) == i+len(prefix) {
		return "", false
	}
	return imageURL[i:], true
}
