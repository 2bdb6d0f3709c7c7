package service

import (
	"context"
	"io"
)

type FileUploadService interface {
	// UploadFile writes the payload verbatim and returns the public reference
	// path for the stored file.
	UploadFile(ctx context.Context, file io.Reader, filename string) (string, error)
}
