package ports

import (
	"context"
	"time"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
)

// SessionStore holds sessions keyed by their opaque id. Get returns
// (nil, false) for unknown ids; Delete reports whether an entry was removed.
type SessionStore interface {
	Put(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, bool)
	Delete(ctx context.Context, id string) bool
	DeleteExpired(ctx context.Context, now time.Time) int
	Len() int
}
