package router

import (
	"github.com/labstack/echo/v4"

	"mediazone/internal/adapter/api/handler"
)

func SetupFileRouter(e *echo.Echo, fileHandler *handler.FileHandler) {
	e.POST("/upload", fileHandler.UploadFile)
}
