package upload

import (
	"log/slog"

	"github.com/ccheever/cho-upload/internal/core/port"
)

// HandlerV1 is the handler for the v1 upload routes
type HandlerV1 struct {
	uploadService     port.UploadService
	notifier          port.ChangeNotifier
	maxMultipartBytes int64
	logger            *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.UploadService, notifier port.ChangeNotifier, maxMultipartBytes int64, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService:     service,
		notifier:          notifier,
		maxMultipartBytes: maxMultipartBytes,
		logger:            logger,
	}
}
