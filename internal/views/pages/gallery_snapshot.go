package pages

import (
	"fmt"
	"sort"

	"tripdeck/internal/views/components"
	"tripdeck/internal/views/theme"
	"tripdeck/models"
)

// GallerySnapshot aggregates the catalogue and the caller-owned state of every
// controlled component on the gallery page. The components never hold this
// state themselves; the session does, and the snapshot hands it back in.
type GallerySnapshot struct {
	Destinations []models.Destination
	Theme        theme.Key
	Filters      GalleryFilters
	// MediaIndex is the current carousel image per destination ID.
	MediaIndex map[uint]int
	// Toggles is the selected state per toggle key.
	Toggles map[string]bool
	// Dismissed holds TagKey values of removed tags.
	Dismissed map[string]bool
}

// NewGallerySnapshot sorts destinations by name and validates the theme.
func NewGallerySnapshot(destinations []models.Destination, themeKey theme.Key) GallerySnapshot {
	sort.SliceStable(destinations, func(i, j int) bool {
		return destinations[i].Name < destinations[j].Name
	})
	return GallerySnapshot{
		Destinations: destinations,
		Theme:        theme.Validate(string(themeKey)),
		MediaIndex:   map[uint]int{},
		Toggles:      map[string]bool{},
		Dismissed:    map[string]bool{},
	}
}

// EmptyGallerySnapshot returns a snapshot with no catalogue.
func EmptyGallerySnapshot() GallerySnapshot {
	return NewGallerySnapshot(nil, theme.DefaultKey)
}

// Visible returns the destinations that pass the filters.
func (s GallerySnapshot) Visible() []models.Destination {
	return FilterDestinations(s.Destinations, s.Filters)
}

// ImageIndex returns the clamped carousel index of d.
func (s GallerySnapshot) ImageIndex(d models.Destination) int {
	return components.ClampIndex(s.MediaIndex[d.ID], len(d.Images))
}

// VisibleTags returns the labels of d that have not been dismissed.
func (s GallerySnapshot) VisibleTags(d models.Destination) []string {
	labels := make([]string, 0, len(d.Tags))
	for _, label := range d.TagLabels() {
		if !s.Dismissed[TagKey(d.ID, TagSlug(label))] {
			labels = append(labels, label)
		}
	}
	return labels
}

// TagKey identifies a tag of a destination in session state.
func TagKey(destinationID uint, slug string) string {
	return fmt.Sprintf("%d:%s", destinationID, slug)
}

// ToggleSpec describes one toggle button on the gallery page.
type ToggleSpec struct {
	Key   string
	Label string
	Theme theme.Key
}

var showcaseToggles = []ToggleSpec{
	{Key: "family-friendly", Label: "Family friendly"},
	{Key: "pet-friendly", Label: "Pet friendly"},
	{Key: "eco-certified", Label: "Eco certified", Theme: theme.Nature},
	{Key: "late-deals", Label: "Late deals", Theme: theme.Vibe},
}

// ShortlistKey is the toggle key of the shortlist button on a destination card.
func ShortlistKey(d models.Destination) string {
	return "shortlist-" + d.Slug
}

// ToggleSpecs lists every toggle rendered for the snapshot: the showcase row
// followed by one shortlist toggle per destination.
func (s GallerySnapshot) ToggleSpecs() []ToggleSpec {
	specs := make([]ToggleSpec, 0, len(showcaseToggles)+len(s.Destinations))
	for _, spec := range showcaseToggles {
		if spec.Theme == "" {
			spec.Theme = s.Theme
		}
		specs = append(specs, spec)
	}
	for _, d := range s.Destinations {
		specs = append(specs, ToggleSpec{Key: ShortlistKey(d), Label: "Shortlist", Theme: theme.Validate(d.Theme)})
	}
	return specs
}

// FindToggle returns the toggle with key.
func (s GallerySnapshot) FindToggle(key string) (ToggleSpec, bool) {
	for _, spec := range s.ToggleSpecs() {
		if spec.Key == key {
			return spec, true
		}
	}
	return ToggleSpec{}, false
}
