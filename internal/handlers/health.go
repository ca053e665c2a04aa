package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	applog "tripdeck/internal/log"
)

// Catalogue states reported by Health.
const (
	catalogueOK           = "ok"
	catalogueUnconfigured = "unconfigured"
	catalogueUnavailable  = "unavailable"
)

const catalogueProbeTimeout = 2 * time.Second

type healthResponse struct {
	Status    string    `json:"status"`
	Catalogue string    `json:"catalogue"`
	Time      time.Time `json:"time"`
}

// Health reports readiness. An unreachable catalogue answers 503; a server
// running without one is still ready since the showcase renders regardless.
func Health(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "health check requested", "method", r.Method)
	resp := healthResponse{
		Status:    "ok",
		Catalogue: probeCatalogue(r.Context()),
		Time:      time.Now().UTC(),
	}
	status := http.StatusOK
	if resp.Catalogue == catalogueUnavailable {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		applog.Error(r.Context(), "failed to encode health response", "error", err)
		return
	}
	applog.Debug(r.Context(), "health check responded", "catalogue", resp.Catalogue)
}

func probeCatalogue(ctx context.Context) string {
	if database == nil {
		return catalogueUnconfigured
	}
	sqlDB, err := database.DB()
	if err != nil {
		applog.Warn(ctx, "catalogue handle unavailable", "error", err)
		return catalogueUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, catalogueProbeTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		applog.Warn(ctx, "catalogue ping failed", "error", err)
		return catalogueUnavailable
	}
	return catalogueOK
}
