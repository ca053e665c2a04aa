package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripdeck/internal/handlers"
	applog "tripdeck/internal/log"
)

func newRouter(assetsDir string) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/gallery", handlers.Gallery)
	mux.HandleFunc("/gallery/destinations/{id}/media", handlers.DestinationMedia)
	mux.HandleFunc("/gallery/destinations/{id}/tags/{slug}", handlers.RemoveTag)
	mux.HandleFunc("/gallery/toggles/{key}", handlers.Toggle)
	mux.HandleFunc("/gallery/preferences/theme", handlers.UpdatePreferences)
	applog.Debug(context.Background(), "route registered", "path", "/gallery")
	mux.HandleFunc("/", handlers.Gallery)
	applog.Debug(context.Background(), "route registered", "path", "/")
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true, "dir", assetsDir)
	return mux
}

const requestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger tags each request with an id, echoed in X-Request-ID, and
// logs its outcome.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := applog.WithRequestID(r.Context(), id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		applog.Debug(ctx, "request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
