package upload

import (
	"embed"
	"net/http"
)

//go:embed web/index.html
var embeddedWeb embed.FS

// PageV1 serves the upload form with the live file listing.
func (h *HandlerV1) PageV1(w http.ResponseWriter, r *http.Request) {
	b, err := embeddedWeb.ReadFile("web/index.html")
	if err != nil {
		http.Error(w, "missing ui", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(b)
}
