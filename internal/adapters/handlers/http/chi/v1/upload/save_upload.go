package upload

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ccheever/cho-upload/internal/core/domain"
)

// V1SaveUploadResponse is the structured result of one submission.
type V1SaveUploadResponse struct {
	OK        bool                `json:"ok"`
	Message   string              `json:"message"`
	Files     []domain.StoredFile `json:"files"`
	Fields    map[string][]string `json:"fields"`
	Directory string              `json:"directory"`
}

// SaveUploadV1 accepts a multipart submission, persists its file parts
// and signals the change notifier when at least one file was stored.
// A submission with no file parts is not a parse error (ok stays true)
// but answers 400: it is an unsatisfied request.
func (h *HandlerV1) SaveUploadV1(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxMultipartBytes); err != nil {
		h.logger.Error("error parsing multipart form", "error", err)
		http.Error(w, "failed to parse multipart form", http.StatusBadRequest)
		return
	}

	result, err := h.uploadService.SaveUpload(r.Context(), r.MultipartForm)
	switch {
	case errors.Is(err, domain.ErrNoFilesStored):
		h.writeResult(w, http.StatusBadRequest, V1SaveUploadResponse{
			OK:        true,
			Message:   "no files were detected in the submission",
			Files:     result.Stored,
			Fields:    result.Fields,
			Directory: h.uploadService.Directory(),
		})
		return
	case err != nil:
		h.logger.Error("error storing upload", "error", err)
		h.writeResult(w, http.StatusInternalServerError, V1SaveUploadResponse{
			OK:        false,
			Message:   "failed to store upload",
			Files:     result.Stored,
			Fields:    result.Fields,
			Directory: h.uploadService.Directory(),
		})
		return
	default:
		h.notifier.Signal()
		h.writeResult(w, http.StatusOK, V1SaveUploadResponse{
			OK:        true,
			Message:   fmt.Sprintf("stored %d file(s)", len(result.Stored)),
			Files:     result.Stored,
			Fields:    result.Fields,
			Directory: h.uploadService.Directory(),
		})
		return
	}
}

func (h *HandlerV1) writeResult(w http.ResponseWriter, status int, resp V1SaveUploadResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
