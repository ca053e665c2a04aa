package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"gorm.io/gorm"

	"tripdeck/internal/db"
	applog "tripdeck/internal/log"
	"tripdeck/internal/views/components"
	"tripdeck/internal/views/pages"
	"tripdeck/models"
)

// loadSnapshot builds the gallery state for r. A catalogue failure is logged
// and yields an empty catalogue so the component showcase still renders.
func loadSnapshot(r *http.Request) pages.GallerySnapshot {
	destinations, err := db.ListDestinations(r.Context(), database)
	if err != nil {
		applog.Error(r.Context(), "failed to load destination catalogue", "error", err)
		destinations = nil
	}
	snapshot := pages.NewGallerySnapshot(destinations, sessionTheme(r))
	snapshot.Filters = pages.GalleryFiltersFromRequest(r)
	applySessionState(r, &snapshot)
	return snapshot
}

// Gallery renders the component gallery. HTMX requests receive only the
// gallery body.
func Gallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" && r.URL.Path != "/gallery" {
		http.NotFound(w, r)
		return
	}

	snapshot := loadSnapshot(r)
	applog.Debug(r.Context(), "rendering gallery",
		"theme", snapshot.Theme,
		"destinations", len(snapshot.Destinations),
		"htmx", isHTMX(r),
	)

	var component templ.Component
	if isHTMX(r) {
		component = pages.GalleryPartial(snapshot)
	} else {
		component = pages.GalleryPage(snapshot)
	}
	renderComponent(w, r, component)
}

// findDestination resolves the {id} path value, writing an error response
// when it does not name a destination.
func findDestination(w http.ResponseWriter, r *http.Request) (*models.Destination, bool) {
	id := pages.ParseUint(r.PathValue("id"))
	if id == 0 {
		http.NotFound(w, r)
		return nil, false
	}
	destination, err := db.FindDestination(r.Context(), database, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return nil, false
		}
		applog.Error(r.Context(), "failed to load destination", "id", id, "error", err)
		http.Error(w, "unable to load destination", http.StatusInternalServerError)
		return nil, false
	}
	return destination, true
}

// DestinationMedia moves a destination carousel to the requested image and
// renders the carousel at its new position.
func DestinationMedia(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	destination, ok := findDestination(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("index")))
	if err != nil {
		applog.Debug(r.Context(), "invalid carousel index", "value", r.URL.Query().Get("index"))
		http.Error(w, "invalid image index", http.StatusBadRequest)
		return
	}
	index = components.ClampIndex(index, len(destination.Images))
	setMediaIndex(r, destination.ID, index)
	renderComponent(w, r, pages.DestinationMedia(*destination, index))
}

// Toggle flips the toggle named by the {key} path value and renders it in its
// new state.
func Toggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	key := r.PathValue("key")
	spec, ok := loadSnapshot(r).FindToggle(key)
	if !ok {
		applog.Debug(r.Context(), "unknown toggle", "key", key)
		http.NotFound(w, r)
		return
	}
	selected := !toggleState(r, key)
	setToggleState(r, key, selected)
	triggerEvent(w, r, toggleChangedEvent, map[string]any{"key": key, "selected": selected})
	renderComponent(w, r, pages.ToggleChip(spec, selected))
}

// RemoveTag dismisses a tag of a destination for the rest of the session. The
// empty response lets the client swap the badge out.
func RemoveTag(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	destination, ok := findDestination(w, r)
	if !ok {
		return
	}
	slug := r.PathValue("slug")
	found := false
	for _, label := range destination.TagLabels() {
		if pages.TagSlug(label) == slug {
			found = true
			break
		}
	}
	if !found {
		http.NotFound(w, r)
		return
	}
	dismissTag(r, destination.ID, slug)
	applog.Debug(r.Context(), "tag dismissed", "destination", destination.Slug, "tag", slug)
	triggerEvent(w, r, tagDismissedEvent, map[string]any{"destination": destination.ID, "tag": slug})
	w.WriteHeader(http.StatusOK)
}
