package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	applog "tripdeck/internal/log"
	"tripdeck/internal/views/theme"
)

type preferencesResponse struct {
	Theme string `json:"theme"`
	Label string `json:"label"`
}

// UpdatePreferences stores the preferred gallery theme in the session. An
// empty value restores the configured default; an unknown one is rejected.
func UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "preferences update with unsupported method", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse preferences form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	value := strings.ToLower(strings.TrimSpace(r.FormValue("theme")))
	selected := defaultTheme
	if value != "" {
		if !theme.Known(theme.Key(value)) {
			applog.Debug(r.Context(), "received invalid theme selection", "value", value)
			http.Error(w, "invalid theme selection", http.StatusBadRequest)
			return
		}
		selected = theme.Key(value)
	}

	setSessionTheme(r, selected)

	refreshClient(w, r)
	response := preferencesResponse{Theme: selected.String(), Label: theme.Label(selected)}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		applog.Error(r.Context(), "failed to encode preferences response", "error", err)
	}
}
