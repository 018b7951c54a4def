package service

import (
	"context"
	"database/sql"
	"io"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

// memoryTable is a map-backed stand-in for one storage collection. calls
// counts every storage operation so tests can assert none happened.
type memoryTable[T any] struct {
	rows  map[int64]T
	calls int

	insertErr      error
	findErr        error
	listErr        error
	updateErr      error
	deleteErr      error
	unacknowledged bool
}

func newMemoryTable[T any]() *memoryTable[T] {
	return &memoryTable[T]{rows: make(map[int64]T)}
}

func (m *memoryTable[T]) insert(id int64, row T) (ports.WriteResult, error) {
	m.calls++
	if m.insertErr != nil {
		return ports.WriteResult{}, m.insertErr
	}
	if m.unacknowledged {
		return ports.WriteResult{}, nil
	}
	if _, exists := m.rows[id]; exists {
		return ports.WriteResult{}, &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	}
	m.rows[id] = row
	return ports.WriteResult{Acknowledged: true, MatchedCount: 1}, nil
}

func (m *memoryTable[T]) find(id int64) (*T, error) {
	m.calls++
	if m.findErr != nil {
		return nil, m.findErr
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (m *memoryTable[T]) list(keep func(T) bool) ([]T, error) {
	m.calls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if keep == nil || keep(m.rows[id]) {
			out = append(out, m.rows[id])
		}
	}
	return out, nil
}

func (m *memoryTable[T]) update(id int64, mutate func(*T)) (ports.WriteResult, error) {
	m.calls++
	if m.updateErr != nil {
		return ports.WriteResult{}, m.updateErr
	}
	row, ok := m.rows[id]
	if !ok {
		return ports.WriteResult{Acknowledged: true}, nil
	}
	mutate(&row)
	m.rows[id] = row
	return ports.WriteResult{Acknowledged: true, MatchedCount: 1}, nil
}

func (m *memoryTable[T]) remove(id int64) (ports.WriteResult, error) {
	m.calls++
	if m.deleteErr != nil {
		return ports.WriteResult{}, m.deleteErr
	}
	if _, ok := m.rows[id]; !ok {
		return ports.WriteResult{Acknowledged: true}, nil
	}
	delete(m.rows, id)
	return ports.WriteResult{Acknowledged: true, MatchedCount: 1, DeletedCount: 1}, nil
}

type fakeUserRepo struct{ *memoryTable[domain.User] }

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{newMemoryTable[domain.User]()} }

func (f *fakeUserRepo) Insert(ctx context.Context, user *domain.User) (ports.WriteResult, error) {
	row := *user
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt
	return f.insert(user.ID, row)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return f.find(id)
}

func (f *fakeUserRepo) FindByName(ctx context.Context, name string) (*domain.User, error) {
	users, err := f.list(func(u domain.User) bool { return u.Name == name })
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, sql.ErrNoRows
	}
	return &users[0], nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	return f.list(nil)
}

func (f *fakeUserRepo) Update(ctx context.Context, id int64, name string, passwordHash, passwordSalt []byte) (ports.WriteResult, error) {
	return f.update(id, func(u *domain.User) {
		u.Name = name
		u.PasswordHash = passwordHash
		u.PasswordSalt = passwordSalt
	})
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) (ports.WriteResult, error) {
	return f.remove(id)
}

type fakeProjectRepo struct{ *memoryTable[domain.Project] }

func newFakeProjectRepo() *fakeProjectRepo { return &fakeProjectRepo{newMemoryTable[domain.Project]()} }

func (f *fakeProjectRepo) Insert(ctx context.Context, project *domain.Project) (ports.WriteResult, error) {
	return f.insert(project.ID, *project)
}

func (f *fakeProjectRepo) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	return f.find(id)
}

func (f *fakeProjectRepo) List(ctx context.Context, filter domain.ProjectListFilter) ([]domain.Project, error) {
	return f.list(func(p domain.Project) bool {
		if filter.UserID != nil && p.UserID != *filter.UserID {
			return false
		}
		if len(filter.Tags) == 0 {
			return true
		}
		for _, tag := range filter.Tags {
			if p.Tag == tag {
				return true
			}
		}
		return false
	})
}

func (f *fakeProjectRepo) Update(ctx context.Context, id int64, title, description, tag string) (ports.WriteResult, error) {
	return f.update(id, func(p *domain.Project) {
		p.Title = title
		p.Description = description
		p.Tag = tag
	})
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id int64) (ports.WriteResult, error) {
	return f.remove(id)
}

type fakeStoryboardRepo struct{ *memoryTable[domain.Storyboard] }

func newFakeStoryboardRepo() *fakeStoryboardRepo {
	return &fakeStoryboardRepo{newMemoryTable[domain.Storyboard]()}
}

func (f *fakeStoryboardRepo) Insert(ctx context.Context, storyboard *domain.Storyboard) (ports.WriteResult, error) {
	return f.insert(storyboard.ID, *storyboard)
}

func (f *fakeStoryboardRepo) FindByID(ctx context.Context, id int64) (*domain.Storyboard, error) {
	return f.find(id)
}

func (f *fakeStoryboardRepo) List(ctx context.Context, filter domain.StoryboardListFilter) ([]domain.Storyboard, error) {
	return f.list(func(s domain.Storyboard) bool {
		return filter.ProjectID == nil || s.ProjectID == *filter.ProjectID
	})
}

func (f *fakeStoryboardRepo) Update(ctx context.Context, id, categoryID int64, description string) (ports.WriteResult, error) {
	return f.update(id, func(s *domain.Storyboard) {
		s.CategoryID = categoryID
		s.Description = description
	})
}

func (f *fakeStoryboardRepo) UpdateImage(ctx context.Context, id int64, imageURL string) (ports.WriteResult, error) {
	return f.update(id, func(s *domain.Storyboard) {
		s.ImageURL = &imageURL
	})
}

func (f *fakeStoryboardRepo) Delete(ctx context.Context, id int64) (ports.WriteResult, error) {
	return f.remove(id)
}

type fakeTagRepo struct{ *memoryTable[domain.Tag] }

func newFakeTagRepo() *fakeTagRepo { return &fakeTagRepo{newMemoryTable[domain.Tag]()} }

func (f *fakeTagRepo) Insert(ctx context.Context, tag *domain.Tag) (ports.WriteResult, error) {
	return f.insert(tag.ID, *tag)
}

func (f *fakeTagRepo) FindByID(ctx context.Context, id int64) (*domain.Tag, error) {
	return f.find(id)
}

func (f *fakeTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	return f.list(nil)
}

func (f *fakeTagRepo) Update(ctx context.Context, id int64, name string) (ports.WriteResult, error) {
	return f.update(id, func(t *domain.Tag) { t.Name = name })
}

func (f *fakeTagRepo) Delete(ctx context.Context, id int64) (ports.WriteResult, error) {
	return f.remove(id)
}

type fakeTaskLogRepo struct{ *memoryTable[domain.TaskLog] }

func newFakeTaskLogRepo() *fakeTaskLogRepo { return &fakeTaskLogRepo{newMemoryTable[domain.TaskLog]()} }

func (f *fakeTaskLogRepo) Insert(ctx context.Context, taskLog *domain.TaskLog) (ports.WriteResult, error) {
	return f.insert(taskLog.ID, *taskLog)
}

func (f *fakeTaskLogRepo) FindByID(ctx context.Context, id int64) (*domain.TaskLog, error) {
	return f.find(id)
}

func (f *fakeTaskLogRepo) List(ctx context.Context, filter domain.TaskLogListFilter) ([]domain.TaskLog, error) {
	return f.list(func(t domain.TaskLog) bool {
		if filter.ProjectID != nil && t.ProjectID != *filter.ProjectID {
			return false
		}
		return filter.Resolved == nil || t.IsResolved == *filter.Resolved
	})
}

func (f *fakeTaskLogRepo) Update(ctx context.Context, id int64, issue string, isResolved bool) (ports.WriteResult, error) {
	return f.update(id, func(t *domain.TaskLog) {
		t.Issue = issue
		t.IsResolved = isResolved
	})
}

func (f *fakeTaskLogRepo) Delete(ctx context.Context, id int64) (ports.WriteResult, error) {
	return f.remove(id)
}

type memoryStorage struct {
	uploads    int
	lastBucket string
	lastObject string
	lastType   string
	lastData   []byte
	err        error
	deleted    []string
	deleteErr  error
}

func (m *memoryStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.uploads++
	m.lastBucket = bucket
	m.lastObject = objectName
	m.lastType = contentType
	m.lastData = data
	return "http://minio.local/" + bucket + "/" + objectName, nil
}

func (m *memoryStorage) Delete(ctx context.Context, bucket, objectName string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, bucket+"/"+objectName)
	return nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
