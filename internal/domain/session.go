package domain

import "time"

// Session is a time-bounded credential mapping an opaque token to a username.
// Expiry is evaluated lazily by callers; nothing evicts a Session on its own.
type Session struct {
	ID        string    `json:"sessionId"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpiredAt reports whether ExpiresAt is strictly before now.
func (s Session) IsExpiredAt(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// IsExpired reports whether the session has expired according to the wall clock.
func (s Session) IsExpired() bool {
	return s.IsExpiredAt(time.Now())
}
