package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
)

func parseIDParam(c echo.Context) (int64, error) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("id must be an integer, got %q", raw)
	}
	return id, nil
}

// required dereferences a numeric body field that the client must send.
func required(field string, value *int64) (int64, error) {
	if value == nil {
		return 0, domain.NewValidationError("%s is required", field)
	}
	return *value, nil
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	return nil
}

func optionalInt64Query(c echo.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError("%s must be an integer, got %q", name, raw)
	}
	return &v, nil
}

func optionalBoolQuery(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError("%s must be true or false, got %q", name, raw)
	}
	return &v, nil
}

// listQuery collects comma separated and repeated values of a query parameter.
func listQuery(c echo.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryParams()[name] {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
