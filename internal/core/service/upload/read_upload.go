package upload

import (
	"context"
	"io"

	"github.com/ccheever/cho-upload/internal/core/domain"
)

// ReadUpload opens one stored file for streaming. The name is validated
// against the safe-name whitelist before any filesystem access; this is
// the read path's path-traversal defense.
func (s *uploadService) ReadUpload(ctx context.Context, name string) (io.ReadSeekCloser, *domain.UploadedFile, error) {
	if !domain.IsSafeName(name) {
		return nil, nil, domain.ErrUnsafeName
	}
	return s.storage.OpenFile(ctx, name)
}
