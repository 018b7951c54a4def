package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
)

const projectEntity = "project"

type ProjectService interface {
	Create(ctx context.Context, id int64, title, description, tag string, userID int64) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectListFilter) ([]domain.Project, error)
	Update(ctx context.Context, id int64, newTitle, newDescription, newTag string) (*domain.Project, error)
	Delete(ctx context.Context, id int64) (*domain.Project, error)
}

type ProjectHandler struct {
	projects ProjectService
	resp     *Responder
}

func RegisterProjects(e *echo.Echo, projects ProjectService, resp *Responder, requireSession echo.MiddlewareFunc) {
	h := &ProjectHandler{projects: projects, resp: resp}

	g := e.Group("/projects", requireSession)
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *ProjectHandler) create(c echo.Context) error {
	var req struct {
		ID          *int64 `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Tag         string `json:"tag"`
		UserID      *int64 `json:"userId"`
	}
	if err := bindBody(c, &req); err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}
	id, err := required("id", req.ID)
	if err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}
	userID, err := required("userId", req.UserID)
	if err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}

	project, err := h.projects.Create(c.Request().Context(), id, req.Title, req.Description, req.Tag, userID)
	if err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}
	project, err := h.projects.Get(c.Request().Context(), id)
	if err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) list(c echo.Context) error {
	filter, err := parseProjectListFilter(c)
	if err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}
	projects, err := h.projects.List(c.Request().Context(), filter)
	if err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}
	if len(projects) == 0 {
		return h.resp.Empty(c, projectEntity)
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) update(c echo.Context) error {
	var req struct {
		ID             *int64 `json:"id"`
		NewTitle       string `json:"newTitle"`
		NewDescription string `json:"newDescription"`
		NewTag         string `json:"newTag"`
	}
	if err := bindBody(c, &req); err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}
	id, err := required("id", req.ID)
	if err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}

	project, err := h.projects.Update(c.Request().Context(), id, req.NewTitle, req.NewDescription, req.NewTag)
	if err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}
	project, err := h.projects.Delete(c.Request().Context(), id)
	if err != nil {
		return h.resp.Fail(c, projectEntity, err)
	}
	return c.JSON(http.StatusOK, project)
}

func parseProjectListFilter(c echo.Context) (domain.ProjectListFilter, error) {
	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return domain.ProjectListFilter{}, err
	}
	return domain.ProjectListFilter{UserID: userID, Tags: listQuery(c, "tag")}, nil
}
