package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
)

const tagEntity = "tag"

type TagService interface {
	Create(ctx context.Context, id int64, name string) (*domain.Tag, error)
	Get(ctx context.Context, id int64) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Update(ctx context.Context, id int64, newName string) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) (*domain.Tag, error)
}

type TagHandler struct {
	tags TagService
	resp *Responder
}

func RegisterTags(e *echo.Echo, tags TagService, resp *Responder, requireSession echo.MiddlewareFunc) {
	h := &TagHandler{tags: tags, resp: resp}

	g := e.Group("/tags", requireSession)
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *TagHandler) create(c echo.Context) error {
	var req struct {
		ID   *int64 `json:"id"`
		Name string `json:"name"`
	}
	if err := bindBody(c, &req); err != nil {
		return h.resp.Fail(c, tagEntity, err)
	}
	id, err := required("id", req.ID)
	if err != nil {
		return h.resp.Fail(c, tagEntity, err)
	}

	tag, err := h.tags.Create(c.Request().Context(), id, req.Name)
	if err != nil {
		return h.resp.Fail(c, tagEntity, err)
	}
	return c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.resp.Fail(c, tagEntity, err)
	}
	tag, err := h.tags.Get(c.Request().Context(), id)
	if err != nil {
		return h.resp.Fail(c, tagEntity, err)
	}
	return c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) list(c echo.Context) error {
	tags, err := h.tags.List(c.Request().Context())
	if err != nil {
		return h.resp.Fail(c, tagEntity, err)
	}
	if len(tags) == 0 {
		return h.resp.Empty(c, tagEntity)
	}
	return c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) update(c echo.Context) error {
	var req struct {
		ID      *int64 `json:"id"`
		NewName string `json:"newName"`
	}
	if err := bindBody(c, &req); err != nil {
		return h.resp.Fail(c, tagEntity, err)
	}
	id, err := required("id", req.ID)
	if err != nil {
		return h.resp.Fail(c, tagEntity, err)
	}

	tag, err := h.tags.Update(c.Request().Context(), id, req.NewName)
	if err != nil {
		return h.resp.Fail(c, tagEntity, err)
	}
	return c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.resp.Fail(c, tagEntity, err)
	}
	tag, err := h.tags.Delete(c.Request().Context(), id)
	if err != nil {
		return h.resp.Fail(c, tagEntity, err)
	}
	return c.JSON(http.StatusOK, tag)
}
