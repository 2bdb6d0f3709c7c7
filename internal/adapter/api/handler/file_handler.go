package handler

import (
	"fmt"

	"mediazone/internal/domain/service"
	"mediazone/pkg/errors"
	"mediazone/pkg/logger"
	"mediazone/pkg/response"

	"github.com/labstack/echo/v4"
)

type FileHandler struct {
	fileService service.FileUploadService
	maxFileSize int64
}

// NewFileHandler wires the upload endpoint. maxFileSize of zero disables the
// size check; the storefront pre-checks sizes client-side and the server
// historically accepted whatever arrived.
func NewFileHandler(fileService service.FileUploadService, maxFileSize int64) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		maxFileSize: maxFileSize,
	}
}

func (h *FileHandler) UploadFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file uploaded", err))
	}

	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	url, err := h.fileService.UploadFile(c.Request().Context(), src, file.Filename)
	if err != nil {
		logger.Error("Upload failed: %v", err)
		return response.Error(c, errors.Internal("Upload failed", err))
	}

	return response.JSON(c, map[string]interface{}{"url": url})
}
