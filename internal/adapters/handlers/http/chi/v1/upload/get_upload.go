package upload

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/ccheever/cho-upload/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// GetUploadV1 streams one stored file back. The name is validated
// against the safe-name whitelist before any filesystem access, so a
// traversal attempt answers 400 without the file ever being read.
func (h *HandlerV1) GetUploadV1(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	stream, info, err := h.uploadService.ReadUpload(r.Context(), name)
	switch {
	case errors.Is(err, domain.ErrUnsafeName):
		http.Error(w, "invalid filename", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrFileNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		h.logger.Error("error reading upload", "name", name, "error", err)
		http.Error(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	defer stream.Close()

	if ct := contentTypeForName(info.Name); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	if r.URL.Query().Get("dl") == "1" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", info.Name))
	}
	http.ServeContent(w, r, info.Name, info.ModifiedAt, stream)
}

func contentTypeForName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	// Fallbacks for systems with sparse mime tables.
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".pdf":
		return "application/pdf"
	case ".txt", ".log", ".md":
		return "text/plain; charset=utf-8"
	case ".zip":
		return "application/zip"
	default:
		return ""
	}
}
