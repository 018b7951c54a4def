package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/service"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/util"
)

const (
	sessionCookieName = "session_id"
	contextSessionKey = "session"
)

type SessionAuthenticator interface {
	Authenticate(ctx context.Context, sessionID string) (*domain.Session, error)
}

// RequireSession rejects requests without a live session. The session id
// is read from an "Authorization: Bearer" header or the session_id cookie;
// the first one that authenticates wins.
func RequireSession(sessions SessionAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			candidates := sessionIDsFromRequest(c)
			if len(candidates) == 0 {
				return c.JSON(http.StatusUnauthorized, util.ErrorMessage("authentication required"))
			}
			var firstErr error
			for _, sessionID := range candidates {
				session, err := sessions.Authenticate(c.Request().Context(), sessionID)
				if err == nil {
					c.Set(contextSessionKey, session)
					return next(c)
				}
				if firstErr == nil {
					firstErr = err
				}
			}
			if errors.Is(firstErr, service.ErrSessionExpired) {
				return c.JSON(http.StatusUnauthorized, util.ErrorMessage("session expired"))
			}
			return c.JSON(http.StatusUnauthorized, util.ErrorMessage("invalid session"))
		}
	}
}

func CurrentSession(c echo.Context) (*domain.Session, bool) {
	session, ok := c.Get(contextSessionKey).(*domain.Session)
	return session, ok && session != nil
}

// sessionIDsFromRequest returns the distinct non-empty session ids carried
// by the request, bearer token first.
func sessionIDsFromRequest(c echo.Context) []string {
	var ids []string
	authHeader := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		if token := strings.TrimSpace(parts[1]); token != "" {
			ids = append(ids, token)
		}
	}
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		if value := strings.TrimSpace(cookie.Value); value != "" && (len(ids) == 0 || ids[0] != value) {
			ids = append(ids, value)
		}
	}
	return ids
}
