package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/metrics"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// SessionService mints, looks up and revokes sessions held in a
// SessionStore. The clock is injectable so expiry can be tested without
// sleeping.
type SessionService struct {
	store   ports.SessionStore
	metrics *metrics.Metrics
	now     func() time.Time
}

type SessionOption func(*SessionService)

func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionService) { s.now = now }
}

func WithSessionMetrics(m *metrics.Metrics) SessionOption {
	return func(s *SessionService) { s.metrics = m }
}

func NewSessionService(store ports.SessionStore, opts ...SessionOption) *SessionService {
	s := &SessionService{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession stores a session for username expiring ttlMinutes from now
// and returns its id. A non-positive ttl yields an already expired session.
func (s *SessionService) CreateSession(ctx context.Context, username string, ttlMinutes int) (string, error) {
	if username == "" {
		return "", domain.NewValidationError("username is required to create a session")
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}

	session := domain.Session{
		ID:        id.String(),
		Username:  username,
		ExpiresAt: s.now().Add(time.Duration(ttlMinutes) * time.Minute),
	}
	if err := s.store.Put(ctx, session); err != nil {
		return "", domain.NewStorageError("store session", err)
	}
	s.metrics.SessionCreated(s.store.Len())
	return session.ID, nil
}

// GetSession returns the stored session verbatim, expired or not.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*domain.Session, bool) {
	return s.store.Get(ctx, sessionID)
}

// DeleteSession is idempotent.
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) {
	if s.store.Delete(ctx, sessionID) {
		s.metrics.SessionsRemoved("logout", 1, s.store.Len())
	}
}

func (s *SessionService) IsExpired(session domain.Session) bool {
	return session.IsExpiredAt(s.now())
}

// Authenticate resolves a session id for an incoming request. Expired
// sessions are removed on the way out.
func (s *SessionService) Authenticate(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, ok := s.store.Get(ctx, sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.IsExpired(*session) {
		if s.store.Delete(ctx, sessionID) {
			s.metrics.SessionsRemoved("expired", 1, s.store.Len())
		}
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Sweep evicts every expired session and reports how many were removed.
func (s *SessionService) Sweep(ctx context.Context) int {
	removed := s.store.DeleteExpired(ctx, s.now())
	s.metrics.SessionsRemoved("sweep", removed, s.store.Len())
	return removed
}
