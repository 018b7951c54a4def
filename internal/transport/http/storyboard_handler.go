package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/media"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/service"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/util"
)

const storyboardEntity = "storyboard"

type StoryboardService interface {
	Create(ctx context.Context, id, projectID, categoryID int64, description string) (*domain.Storyboard, error)
	Get(ctx context.Context, id int64) (*domain.Storyboard, error)
	List(ctx context.Context, filter domain.StoryboardListFilter) ([]domain.Storyboard, error)
	Update(ctx context.Context, id, newCategoryID int64, newDescription string) (*domain.Storyboard, error)
	Delete(ctx context.Context, id int64) (*domain.Storyboard, error)
	UploadImage(ctx context.Context, id int64, upload media.Upload) (*domain.Storyboard, error)
}

type StoryboardHandler struct {
	storyboards StoryboardService
	resp        *Responder
}

func RegisterStoryboards(e *echo.Echo, storyboards StoryboardService, resp *Responder, requireSession echo.MiddlewareFunc) {
	h := &StoryboardHandler{storyboards: storyboards, resp: resp}

	g := e.Group("/storyboards", requireSession)
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("", h.update)
	g.PUT("/:id/image", h.uploadImage)
	g.DELETE("/:id", h.delete)
}

func (h *StoryboardHandler) create(c echo.Context) error {
	var req struct {
		ID          *int64 `json:"id"`
		ProjectID   *int64 `json:"projectId"`
		CategoryID  *int64 `json:"categoryId"`
		Description string `json:"description"`
	}
	if err := bindBody(c, &req); err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	id, err := required("id", req.ID)
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	projectID, err := required("projectId", req.ProjectID)
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	categoryID, err := required("categoryId", req.CategoryID)
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}

	storyboard, err := h.storyboards.Create(c.Request().Context(), id, projectID, categoryID, req.Description)
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	return c.JSON(http.StatusOK, storyboard)
}

func (h *StoryboardHandler) get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	storyboard, err := h.storyboards.Get(c.Request().Context(), id)
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	return c.JSON(http.StatusOK, storyboard)
}

func (h *StoryboardHandler) list(c echo.Context) error {
	projectID, err := optionalInt64Query(c, "projectId")
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	storyboards, err := h.storyboards.List(c.Request().Context(), domain.StoryboardListFilter{ProjectID: projectID})
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	if len(storyboards) == 0 {
		return h.resp.Empty(c, storyboardEntity)
	}
	return c.JSON(http.StatusOK, storyboards)
}

func (h *StoryboardHandler) update(c echo.Context) error {
	var req struct {
		ID             *int64 `json:"id"`
		NewCategoryID  *int64 `json:"newCategoryId"`
		NewDescription string `json:"newDescription"`
	}
	if err := bindBody(c, &req); err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	id, err := required("id", req.ID)
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	categoryID, err := required("newCategoryId", req.NewCategoryID)
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}

	storyboard, err := h.storyboards.Update(c.Request().Context(), id, categoryID, req.NewDescription)
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	return c.JSON(http.StatusOK, storyboard)
}

func (h *StoryboardHandler) uploadImage(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, domain.NewValidationError("image upload required"))
	}
	src, err := fileHeader.Open()
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, domain.NewValidationError("unable to read upload"))
	}
	defer src.Close()

	storyboard, err := h.storyboards.UploadImage(c.Request().Context(), id, media.Upload{
		Reader:      src,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if errors.Is(err, service.ErrImageStorageDisabled) {
		return c.JSON(http.StatusServiceUnavailable, util.ErrorMessage(err.Error()))
	}
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	return c.JSON(http.StatusOK, storyboard)
}

func (h *StoryboardHandler) delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	storyboard, err := h.storyboards.Delete(c.Request().Context(), id)
	if err != nil {
		return h.resp.Fail(c, storyboardEntity, err)
	}
	return c.JSON(http.StatusOK, storyboard)
}
