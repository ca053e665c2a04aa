package handlers

import (
	"encoding/json"
	"net/http"

	applog "tripdeck/internal/log"
)

// Client events announced through HX-Trigger.
const (
	toggleChangedEvent = "gallery:toggle-changed"
	tagDismissedEvent  = "gallery:tag-dismissed"
)

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}

// refreshClient asks htmx to reload the page. Plain clients are left alone.
func refreshClient(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
	}
}

// triggerEvent fires a client event carrying detail once the response swaps.
// It must run before the response header is written.
func triggerEvent(w http.ResponseWriter, r *http.Request, name string, detail any) {
	payload, err := json.Marshal(map[string]any{name: detail})
	if err != nil {
		applog.Warn(r.Context(), "failed to encode client event", "event", name, "error", err)
		return
	}
	w.Header().Set("HX-Trigger", string(payload))
}
