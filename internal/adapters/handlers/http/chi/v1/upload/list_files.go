package upload

import (
	"encoding/json"
	"net/http"

	"github.com/ccheever/cho-upload/internal/core/domain"
)

// V1FileListResponse is the response to the file listing
type V1FileListResponse struct {
	Files []domain.UploadedFile `json:"files"`
}

// ListFilesV1 returns the stored files, most recent first. A listing
// failure has already degraded to an empty slice in the service.
func (h *HandlerV1) ListFilesV1(w http.ResponseWriter, r *http.Request) {
	files := h.uploadService.ListUploads(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(V1FileListResponse{Files: files}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
