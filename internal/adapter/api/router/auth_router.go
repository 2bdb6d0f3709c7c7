package router

import (
	"github.com/labstack/echo/v4"

	"mediazone/internal/adapter/api/handler"
	"mediazone/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler, authMiddleware *middleware.AuthMiddleware) {
	admin := e.Group("/admin")
	admin.POST("/login", authHandler.AdminLogin)
	admin.GET("/me", authHandler.Me, authMiddleware.Authenticate)
}
