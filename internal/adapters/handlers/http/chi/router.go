package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ccheever/cho-upload/internal/adapters/handlers/http/chi/v1/upload"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, uploadHandler *upload.HandlerV1) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	// Permissive cross-origin policy so a client served from another
	// origin (e.g. a mobile app's web view) can call the API. Preflights
	// pass through to the OPTIONS short-circuit below.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:     []string{"*"},
		MaxAge:             300,
		OptionsPassthrough: true,
	}))

	// OPTIONS on any path answers an empty 204 before routing, so the
	// wildcard never shadows the 404 fallback for other methods.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/", uploadHandler.PageV1)
	r.Get("/events", uploadHandler.EventsV1)
	r.Get("/uploads/{name}", uploadHandler.GetUploadV1)
	r.Get("/api/files", uploadHandler.ListFilesV1)
	r.Post("/upload", uploadHandler.SaveUploadV1)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	notFound := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not found", http.StatusNotFound)
	}
	r.NotFound(notFound)
	// A known path with the wrong method is just as unmatched.
	r.MethodNotAllowed(notFound)

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
