package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	applog "tripdeck/internal/log"
	"tripdeck/internal/views/pages"
	"tripdeck/internal/views/theme"
)

// Session keys. Values are stored as strings, ints and bools only.
const (
	sessionThemeKey        = "gallery:theme"
	sessionMediaPrefix     = "gallery:media:"
	sessionTogglePrefix    = "gallery:toggle:"
	sessionDismissedPrefix = "gallery:dismissed:"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	defaultTheme   = theme.DefaultKey
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB) {
	sessionManager = sm
	database = db
}

// ConfigureTheme sets the theme used when the session holds no preference.
func ConfigureTheme(k theme.Key) {
	defaultTheme = theme.Validate(string(k))
}

func sessionTheme(r *http.Request) theme.Key {
	if sessionManager == nil {
		return defaultTheme
	}
	if value := sessionManager.GetString(r.Context(), sessionThemeKey); value != "" {
		return theme.Validate(value)
	}
	return defaultTheme
}

func setSessionTheme(r *http.Request, k theme.Key) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionThemeKey, k.String())
}

func mediaKey(destinationID uint) string {
	return fmt.Sprintf("%s%d", sessionMediaPrefix, destinationID)
}

func setMediaIndex(r *http.Request, destinationID uint, index int) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), mediaKey(destinationID), index)
}

func toggleState(r *http.Request, key string) bool {
	if sessionManager == nil {
		return false
	}
	return sessionManager.GetBool(r.Context(), sessionTogglePrefix+key)
}

func setToggleState(r *http.Request, key string, selected bool) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionTogglePrefix+key, selected)
}

func dismissTag(r *http.Request, destinationID uint, slug string) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionDismissedPrefix+pages.TagKey(destinationID, slug), true)
}

// applySessionState copies carousel positions, toggle states and dismissed
// tags from the session into the snapshot.
func applySessionState(r *http.Request, snapshot *pages.GallerySnapshot) {
	if sessionManager == nil {
		return
	}
	ctx := r.Context()
	for _, destination := range snapshot.Destinations {
		snapshot.MediaIndex[destination.ID] = sessionManager.GetInt(ctx, mediaKey(destination.ID))
	}
	for _, spec := range snapshot.ToggleSpecs() {
		if toggleState(r, spec.Key) {
			snapshot.Toggles[spec.Key] = true
		}
	}
	for _, key := range sessionManager.Keys(ctx) {
		if tagKey, ok := strings.CutPrefix(key, sessionDismissedPrefix); ok {
			snapshot.Dismissed[tagKey] = true
		}
	}
}

func renderComponent(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render gallery fragment", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
