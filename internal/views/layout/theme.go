package layout

import (
	"sort"

	"tripdeck/internal/views/theme"
)

// ThemeDefinition describes a theme as the gallery theme picker presents it.
type ThemeDefinition struct {
	Key         theme.Key
	Label       string
	Description string
}

var themeRegistry = map[theme.Key]ThemeDefinition{
	theme.Adventure: {
		Key:         theme.Adventure,
		Label:       theme.Label(theme.Adventure),
		Description: "Orange accents for active trips and outdoor thrills.",
	},
	theme.Vibe: {
		Key:         theme.Vibe,
		Label:       theme.Label(theme.Vibe),
		Description: "Pink accents for nightlife, festivals and city breaks.",
	},
	theme.Nature: {
		Key:         theme.Nature,
		Label:       theme.Label(theme.Nature),
		Description: "Green accents for parks, wildlife and slow travel.",
	},
	theme.Indulge: {
		Key:         theme.Indulge,
		Label:       theme.Label(theme.Indulge),
		Description: "Purple accents for luxury stays and wellness.",
	},
	theme.Discover: {
		Key:         theme.Discover,
		Label:       theme.Label(theme.Discover),
		Description: "Cyan accents for culture, food and history.",
	},
}

// ThemeByKey returns the definition for k, falling back to the default theme.
func ThemeByKey(k theme.Key) ThemeDefinition {
	return themeRegistry[theme.Validate(string(k))]
}

// ThemeOptions exposes all theme definitions sorted by label for form rendering.
func ThemeOptions() []ThemeDefinition {
	options := make([]ThemeDefinition, 0, len(themeRegistry))
	for _, def := range themeRegistry {
		options = append(options, def)
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})
	return options
}
