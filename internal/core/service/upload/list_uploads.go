package upload

import (
	"context"
	"sort"

	"github.com/ccheever/cho-upload/internal/core/domain"
)

// ListUploads returns the stored files sorted most recent first. Names
// that fail the safe-name whitelist are never listed, and a directory
// read failure degrades to an empty listing.
func (s *uploadService) ListUploads(ctx context.Context) []domain.UploadedFile {
	entries, err := s.storage.ListFiles(ctx)
	if err != nil {
		s.logger.Warn("failed to list uploads, degrading to empty listing", "error", err)
		return []domain.UploadedFile{}
	}

	files := make([]domain.UploadedFile, 0, len(entries))
	for _, f := range entries {
		if !domain.IsSafeName(f.Name) {
			continue
		}
		files = append(files, f)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})
	return files
}
