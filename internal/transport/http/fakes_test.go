package http

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/media"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/memory"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/service"
)

type fakeProjectService struct {
	projects   map[int64]domain.Project
	err        error
	lastFilter domain.ProjectListFilter
}

func newFakeProjectService() *fakeProjectService {
	return &fakeProjectService{projects: make(map[int64]domain.Project)}
}

func (f *fakeProjectService) Create(ctx context.Context, id int64, title, description, tag string, userID int64) (*domain.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !domain.IsAddProjectValid(id, title, description, tag, userID) {
		return nil, domain.NewValidationError("invalid project")
	}
	p := domain.Project{ID: id, Title: title, Description: description, Tag: tag, UserID: userID}
	f.projects[id] = p
	return &p, nil
}

func (f *fakeProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProjectService) List(ctx context.Context, filter domain.ProjectListFilter) ([]domain.Project, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectService) Update(ctx context.Context, id int64, newTitle, newDescription, newTag string) (*domain.Project, error) {
	p, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Title, p.Description, p.Tag = newTitle, newDescription, newTag
	f.projects[id] = *p
	return p, nil
}

func (f *fakeProjectService) Delete(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(f.projects, id)
	return p, nil
}

type fakeTagService struct {
	tags map[int64]domain.Tag
}

func newFakeTagService() *fakeTagService {
	return &fakeTagService{tags: make(map[int64]domain.Tag)}
}

func (f *fakeTagService) Create(ctx context.Context, id int64, name string) (*domain.Tag, error) {
	if !domain.IsTagValid(id, name) {
		return nil, domain.NewValidationError("invalid tag")
	}
	t := domain.Tag{ID: id, Name: name}
	f.tags[id] = t
	return &t, nil
}

func (f *fakeTagService) Get(ctx context.Context, id int64) (*domain.Tag, error) {
	t, ok := f.tags[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTagService) List(ctx context.Context) ([]domain.Tag, error) {
	out := make([]domain.Tag, 0, len(f.tags))
	for _, t := range f.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTagService) Update(ctx context.Context, id int64, newName string) (*domain.Tag, error) {
	if !domain.IsTagValid(id, newName) {
		return nil, domain.NewValidationError("invalid tag")
	}
	t, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Name = newName
	f.tags[id] = *t
	return t, nil
}

func (f *fakeTagService) Delete(ctx context.Context, id int64) (*domain.Tag, error) {
	t, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(f.tags, id)
	return t, nil
}

type fakeTaskLogService struct {
	taskLogs   map[int64]domain.TaskLog
	lastFilter domain.TaskLogListFilter
	listCalls  int
}

func newFakeTaskLogService() *fakeTaskLogService {
	return &fakeTaskLogService{taskLogs: make(map[int64]domain.TaskLog)}
}

func (f *fakeTaskLogService) Create(ctx context.Context, id int64, issue string, projectID int64) (*domain.TaskLog, error) {
	if !domain.IsAddTaskLogValid(id, issue, projectID) {
		return nil, domain.NewValidationError("invalid tasklog")
	}
	t := domain.TaskLog{ID: id, Issue: issue, ProjectID: projectID}
	f.taskLogs[id] = t
	return &t, nil
}

func (f *fakeTaskLogService) Get(ctx context.Context, id int64) (*domain.TaskLog, error) {
	t, ok := f.taskLogs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTaskLogService) List(ctx context.Context, filter domain.TaskLogListFilter) ([]domain.TaskLog, error) {
	f.listCalls++
	f.lastFilter = filter
	out := make([]domain.TaskLog, 0, len(f.taskLogs))
	for _, t := range f.taskLogs {
		if filter.ProjectID != nil && t.ProjectID != *filter.ProjectID {
			continue
		}
		if filter.Resolved != nil && t.IsResolved != *filter.Resolved {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTaskLogService) Update(ctx context.Context, id int64, newIssue string, isResolved bool) (*domain.TaskLog, error) {
	if !domain.IsUpdateTaskLogValid(id, newIssue, isResolved) {
		return nil, domain.NewValidationError("invalid tasklog")
	}
	t, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Issue, t.IsResolved = newIssue, isResolved
	f.taskLogs[id] = *t
	return t, nil
}

func (f *fakeTaskLogService) Delete(ctx context.Context, id int64) (*domain.TaskLog, error) {
	t, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(f.taskLogs, id)
	return t, nil
}

type fakeStoryboardService struct {
	uploadErr  error
	lastUpload media.Upload
	lastBytes  []byte
}

func (f *fakeStoryboardService) Create(ctx context.Context, id, projectID, categoryID int64, description string) (*domain.Storyboard, error) {
	return &domain.Storyboard{ID: id, ProjectID: projectID, CategoryID: categoryID, Description: description}, nil
}

func (f *fakeStoryboardService) Get(ctx context.Context, id int64) (*domain.Storyboard, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeStoryboardService) List(ctx context.Context, filter domain.StoryboardListFilter) ([]domain.Storyboard, error) {
	return nil, nil
}

func (f *fakeStoryboardService) Update(ctx context.Context, id, newCategoryID int64, newDescription string) (*domain.Storyboard, error) {
	return &domain.Storyboard{ID: id, CategoryID: newCategoryID, Description: newDescription}, nil
}

func (f *fakeStoryboardService) Delete(ctx context.Context, id int64) (*domain.Storyboard, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeStoryboardService) UploadImage(ctx context.Context, id int64, upload media.Upload) (*domain.Storyboard, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.lastUpload = upload
	data, err := io.ReadAll(upload.Reader)
	if err != nil {
		return nil, err
	}
	f.lastBytes = data
	url := "http://minio.local/storyboards/1/panel.png"
	return &domain.Storyboard{ID: id, Description: "panel", ImageURL: &url}, nil
}

type fakeCredentials struct {
	users map[string]string
}

func (f fakeCredentials) Authenticate(ctx context.Context, name, password string) (*domain.User, error) {
	if pw, ok := f.users[name]; ok && pw == password && password != "" {
		return &domain.User{ID: 1, Name: name}, nil
	}
	return nil, service.ErrInvalidCredentials
}

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func newTestSessions(clock *testClock) *service.SessionService {
	return service.NewSessionService(memory.NewSessionStore(), service.WithClock(clock.Now))
}

func newTestResponder() *Responder {
	return NewResponder(zerolog.Nop(), nil)
}
