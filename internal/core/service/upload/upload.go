package upload

import (
	"log/slog"

	"github.com/ccheever/cho-upload/internal/core/port"
)

type uploadService struct {
	storage port.FileStorage
	dir     string
	logger  *slog.Logger
}

// NewUploadService creates a new upload service over a file storage
func NewUploadService(storage port.FileStorage, dir string, logger *slog.Logger) port.UploadService {
	return &uploadService{storage: storage, dir: dir, logger: logger}
}

// Directory returns the absolute path uploads are persisted under.
func (s *uploadService) Directory() string {
	return s.dir
}
