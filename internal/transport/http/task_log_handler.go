package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
)

const taskLogEntity = "tasklog"

type TaskLogService interface {
	Create(ctx context.Context, id int64, issue string, projectID int64) (*domain.TaskLog, error)
	Get(ctx context.Context, id int64) (*domain.TaskLog, error)
	List(ctx context.Context, filter domain.TaskLogListFilter) ([]domain.TaskLog, error)
	Update(ctx context.Context, id int64, newIssue string, isResolved bool) (*domain.TaskLog, error)
	Delete(ctx context.Context, id int64) (*domain.TaskLog, error)
}

type TaskLogHandler struct {
	taskLogs TaskLogService
	resp     *Responder
}

func RegisterTaskLogs(e *echo.Echo, taskLogs TaskLogService, resp *Responder, requireSession echo.MiddlewareFunc) {
	h := &TaskLogHandler{taskLogs: taskLogs, resp: resp}

	g := e.Group("/tasklogs", requireSession)
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *TaskLogHandler) create(c echo.Context) error {
	var req struct {
		ID        *int64 `json:"id"`
		Issue     string `json:"issue"`
		ProjectID *int64 `json:"projectId"`
	}
	if err := bindBody(c, &req); err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}
	id, err := required("id", req.ID)
	if err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}
	projectID, err := required("projectId", req.ProjectID)
	if err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}

	taskLog, err := h.taskLogs.Create(c.Request().Context(), id, req.Issue, projectID)
	if err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}
	return c.JSON(http.StatusOK, taskLog)
}

func (h *TaskLogHandler) get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}
	taskLog, err := h.taskLogs.Get(c.Request().Context(), id)
	if err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}
	return c.JSON(http.StatusOK, taskLog)
}

func (h *TaskLogHandler) list(c echo.Context) error {
	projectID, err := optionalInt64Query(c, "projectId")
	if err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}
	resolved, err := optionalBoolQuery(c, "resolved")
	if err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}

	taskLogs, err := h.taskLogs.List(c.Request().Context(), domain.TaskLogListFilter{ProjectID: projectID, Resolved: resolved})
	if err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}
	if len(taskLogs) == 0 {
		return h.resp.Empty(c, taskLogEntity)
	}
	return c.JSON(http.StatusOK, taskLogs)
}

func (h *TaskLogHandler) update(c echo.Context) error {
	var req struct {
		ID         *int64 `json:"id"`
		NewIssue   string `json:"newIssue"`
		IsResolved bool   `json:"isResolved"`
	}
	if err := bindBody(c, &req); err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}
	id, err := required("id", req.ID)
	if err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}

	taskLog, err := h.taskLogs.Update(c.Request().Context(), id, req.NewIssue, req.IsResolved)
	if err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}
	return c.JSON(http.StatusOK, taskLog)
}

func (h *TaskLogHandler) delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}
	taskLog, err := h.taskLogs.Delete(c.Request().Context(), id)
	if err != nil {
		return h.resp.Fail(c, taskLogEntity, err)
	}
	return c.JSON(http.StatusOK, taskLog)
}
