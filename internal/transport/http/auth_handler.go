package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/service"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/util"
)

const authEntity = "session"

type CredentialChecker interface {
	Authenticate(ctx context.Context, name, password string) (*domain.User, error)
}

type SessionManager interface {
	SessionAuthenticator
	CreateSession(ctx context.Context, username string, ttlMinutes int) (string, error)
	GetSession(ctx context.Context, sessionID string) (*domain.Session, bool)
	DeleteSession(ctx context.Context, sessionID string)
}

type AuthConfig struct {
	TTLMinutes   int
	SecureCookie bool
}

type AuthHandler struct {
	users    CredentialChecker
	sessions SessionManager
	resp     *Responder
	cfg      AuthConfig
}

func RegisterAuth(e *echo.Echo, users CredentialChecker, sessions SessionManager, resp *Responder, cfg AuthConfig) {
	h := &AuthHandler{users: users, sessions: sessions, resp: resp, cfg: cfg}

	g := e.Group("/auth")
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.GET("/session", h.current, RequireSession(sessions))
}

func (h *AuthHandler) login(c echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := bindBody(c, &req); err != nil {
		return h.resp.Fail(c, authEntity, err)
	}

	ctx := c.Request().Context()
	user, err := h.users.Authenticate(ctx, req.Name, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, util.ErrorMessage(err.Error()))
	}
	if err != nil {
		return h.resp.Fail(c, authEntity, err)
	}

	sessionID, err := h.sessions.CreateSession(ctx, user.Name, h.cfg.TTLMinutes)
	if err != nil {
		return h.resp.Fail(c, authEntity, err)
	}
	session, ok := h.sessions.GetSession(ctx, sessionID)
	if !ok {
		return h.resp.Fail(c, authEntity, errors.New("session vanished after creation"))
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, session)
}

// logout always succeeds; an unknown or missing session is already logged out.
func (h *AuthHandler) logout(c echo.Context) error {
	for _, sessionID := range sessionIDsFromRequest(c) {
		h.sessions.DeleteSession(c.Request().Context(), sessionID)
	}
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, util.Envelope{"message": "logged out"})
}

func (h *AuthHandler) current(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.ErrorMessage("authentication required"))
	}
	return c.JSON(http.StatusOK, session)
}
