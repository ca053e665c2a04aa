package pages

import (
	"net/http"
	"strconv"
	"strings"

	"tripdeck/internal/views/theme"
	"tripdeck/models"
)

// GalleryFilters capture the client-driven state for the destination grid.
type GalleryFilters struct {
	Query string
	// Theme limits the grid to one theme; empty shows every theme.
	Theme        theme.Key
	VisaFreeOnly bool
}

// Active reports whether any filter narrows the grid.
func (f GalleryFilters) Active() bool {
	return f.Query != "" || f.Theme != "" || f.VisaFreeOnly
}

// GalleryFiltersFromRequest extracts filter inputs from an HTTP request.
// Unknown themes are ignored rather than mapped to the default, so a bad link
// shows everything instead of one theme.
func GalleryFiltersFromRequest(r *http.Request) GalleryFilters {
	filters := GalleryFilters{}
	if err := r.ParseForm(); err != nil {
		return filters
	}
	filters.Query = strings.TrimSpace(r.FormValue("q"))
	if k := theme.Key(strings.ToLower(strings.TrimSpace(r.FormValue("theme")))); theme.Known(k) {
		filters.Theme = k
	}
	filters.VisaFreeOnly = parseCheckbox(r.FormValue("visa_free"))
	return filters
}

func parseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// FilterDestinations applies the provided filters to a list of destinations.
func FilterDestinations(all []models.Destination, filters GalleryFilters) []models.Destination {
	if !filters.Active() {
		return all
	}
	query := strings.ToLower(filters.Query)
	filtered := make([]models.Destination, 0, len(all))
	for _, destination := range all {
		if filters.Theme != "" && theme.Validate(destination.Theme) != filters.Theme {
			continue
		}
		if filters.VisaFreeOnly && !destination.VisaFree {
			continue
		}
		if containsFold(destination.Name, query) ||
			containsFold(destination.Country, query) ||
			tagsContain(destination.Tags, query) {
			filtered = append(filtered, destination)
		}
	}
	return filtered
}

func tagsContain(tags []models.DestinationTag, query string) bool {
	if query == "" {
		return true
	}
	for _, tag := range tags {
		if containsFold(tag.Label, query) {
			return true
		}
	}
	return false
}

// ParseUint extracts a uint from the provided string, returning zero on failure.
func ParseUint(value string) uint {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	parsed, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return 0
	}
	return uint(parsed)
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}
