package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
)

const userEntity = "user"

type UserService interface {
	Create(ctx context.Context, id int64, name, password string) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, newName, newPassword string) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
}

type UserHandler struct {
	users UserService
	resp  *Responder
}

// RegisterUsers mounts /users. Registration is open; every other route
// needs a session.
func RegisterUsers(e *echo.Echo, users UserService, resp *Responder, requireSession echo.MiddlewareFunc) {
	h := &UserHandler{users: users, resp: resp}

	e.POST("/users", h.create)
	g := e.Group("/users", requireSession)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *UserHandler) create(c echo.Context) error {
	var req struct {
		ID       *int64 `json:"id"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := bindBody(c, &req); err != nil {
		return h.resp.Fail(c, userEntity, err)
	}
	id, err := required("id", req.ID)
	if err != nil {
		return h.resp.Fail(c, userEntity, err)
	}

	user, err := h.users.Create(c.Request().Context(), id, req.Name, req.Password)
	if err != nil {
		return h.resp.Fail(c, userEntity, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.resp.Fail(c, userEntity, err)
	}
	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return h.resp.Fail(c, userEntity, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) list(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return h.resp.Fail(c, userEntity, err)
	}
	if len(users) == 0 {
		return h.resp.Empty(c, userEntity)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) update(c echo.Context) error {
	var req struct {
		ID          *int64 `json:"id"`
		NewName     string `json:"newName"`
		NewPassword string `json:"newPassword"`
	}
	if err := bindBody(c, &req); err != nil {
		return h.resp.Fail(c, userEntity, err)
	}
	id, err := required("id", req.ID)
	if err != nil {
		return h.resp.Fail(c, userEntity, err)
	}

	user, err := h.users.Update(c.Request().Context(), id, req.NewName, req.NewPassword)
	if err != nil {
		return h.resp.Fail(c, userEntity, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.resp.Fail(c, userEntity, err)
	}
	user, err := h.users.Delete(c.Request().Context(), id)
	if err != nil {
		return h.resp.Fail(c, userEntity, err)
	}
	return c.JSON(http.StatusOK, user)
}
