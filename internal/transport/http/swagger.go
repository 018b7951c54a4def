package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/njprem/ProjectBoard_APP_BackEnd/docs"
)

// RegisterSwagger serves the Swagger UI and the embedded document under /swagger.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
