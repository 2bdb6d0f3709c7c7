package router

import (
	"github.com/labstack/echo/v4"

	"mediazone/internal/adapter/api/handler"
	"mediazone/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, authHandler *handler.AuthHandler, fileHandler *handler.FileHandler) {
	SetupProductRouter(e)
	SetupOrderRouter(e)
	SetupFileRouter(e, fileHandler)
	SetupAuthRouter(e, authHandler, authMiddleware)
	SetupHealthRouter(e)
}
