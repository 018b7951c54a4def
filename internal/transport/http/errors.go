package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/metrics"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/util"
)

// Responder turns service errors into HTTP responses. It is the only place
// where error kinds are mapped to status codes.
type Responder struct {
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

func NewResponder(logger zerolog.Logger, m *metrics.Metrics) *Responder {
	return &Responder{logger: logger, metrics: m}
}

// Fail writes the response for err raised while handling entity requests.
// Absent entities get a plain-text 400; everything else is keyed on the
// error kind.
func (r *Responder) Fail(c echo.Context, entity string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		r.metrics.ErrorResponse(entity, "not_found")
		r.logger.Warn().Str("entity", entity).Str("path", c.Path()).Msg("entity not found")
		return c.String(http.StatusBadRequest, "Failed to find "+entity)
	}

	kind := domain.KindOf(err)
	r.metrics.ErrorResponse(entity, kind.String())

	var (
		status int
		prefix string
	)
	switch kind {
	case domain.KindValidation:
		status, prefix = http.StatusBadRequest, "There was a validation error: "
	case domain.KindStorage:
		status, prefix = http.StatusInternalServerError, "There was a system error: "
	default:
		status, prefix = http.StatusInternalServerError, "There was an unexpected error: "
	}

	event := r.logger.Error()
	if status < http.StatusInternalServerError {
		event = r.logger.Warn()
	}
	event.Err(err).Str("entity", entity).Str("kind", kind.String()).Msg("request failed")

	return c.JSON(status, util.ErrorMessage(prefix+err.Error()))
}

// Empty answers a list request that matched nothing.
func (r *Responder) Empty(c echo.Context, entity string) error {
	r.metrics.ErrorResponse(entity, "empty")
	return c.String(http.StatusBadRequest, "No "+entity+" records found")
}
