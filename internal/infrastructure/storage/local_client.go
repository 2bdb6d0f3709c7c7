package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"mediazone/internal/domain/service"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// LocalClient stores uploads on the local filesystem under a fixed public
// directory and hands back the path they are served from. Filenames are the
// upload timestamp prefixed onto the sanitized original name; collision
// avoidance rides on the timestamp granularity.
type LocalClient struct {
	uploadDir string
	publicURL string
}

func NewLocalClient(uploadDir, publicURL string) service.FileUploadService {
	return &LocalClient{
		uploadDir: uploadDir,
		publicURL: publicURL,
	}
}

func (c *LocalClient) UploadFile(ctx context.Context, file io.Reader, filename string) (string, error) {
	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), unsafeFilenameChars.ReplaceAllString(filename, "_"))

	if err := os.MkdirAll(c.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(c.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return c.publicURL + "/" + name, nil
}
