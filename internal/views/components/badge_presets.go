package components

import (
	"github.com/a-h/templ"

	"tripdeck/internal/views/icons"
	"tripdeck/internal/views/theme"
)

// Status is the lifecycle state shown by a StatusBadge.
type Status int

const (
	StatusActive Status = iota
	StatusPending
	StatusInactive
	StatusError
)

// StatusBadgeProps configures a StatusBadge. Label replaces the default text.
type StatusBadgeProps struct {
	Status Status
	Size   BadgeSize
	Label  string
	Class  string
	Attrs  templ.Attributes
}

// Badge expands the preset into the base badge props.
func (p StatusBadgeProps) Badge() BadgeProps {
	var (
		variant BadgeVariant
		glyph   icons.Glyph
		label   string
	)
	switch p.Status {
	case StatusPending:
		variant, glyph, label = BadgeWarning, icons.Clock, "Pending"
	case StatusInactive:
		variant, glyph, label = BadgeSecondary, icons.PauseCircle, "Inactive"
	case StatusError:
		variant, glyph, label = BadgeDanger, icons.AlertCircle, "Error"
	default:
		variant, glyph, label = BadgeSuccess, icons.CheckCircle, "Active"
	}
	if p.Label != "" {
		label = p.Label
	}
	return BadgeProps{
		Variant: variant,
		Size:    p.Size,
		Icon:    glyph.Class(BadgeIconClass(p.Size)),
		Label:   label,
		Class:   p.Class,
		Attrs:   p.Attrs,
	}
}

// StatusBadge renders a lifecycle status chip.
func StatusBadge(p StatusBadgeProps) templ.Component {
	return Badge(p.Badge())
}

// Trend is the direction a price moved in.
type Trend int

const (
	TrendStable Trend = iota
	TrendUp
	TrendDown
)

// PriceBadgeProps configures a PriceBadge. Label is usually the formatted
// price; it defaults to a word describing the trend.
type PriceBadgeProps struct {
	Trend Trend
	Size  BadgeSize
	Label string
	Class string
	Attrs templ.Attributes
}

// Badge expands the preset into the base badge props. Rising prices render as
// danger and falling prices as success.
func (p PriceBadgeProps) Badge() BadgeProps {
	var (
		variant BadgeVariant
		glyph   icons.Glyph
		label   string
	)
	switch p.Trend {
	case TrendUp:
		variant, glyph, label = BadgeDanger, icons.TrendingUp, "Rising"
	case TrendDown:
		variant, glyph, label = BadgeSuccess, icons.TrendingDown, "Dropping"
	default:
		variant, glyph, label = BadgeSecondary, icons.Minus, "Stable"
	}
	if p.Label != "" {
		label = p.Label
	}
	return BadgeProps{
		Variant: variant,
		Size:    p.Size,
		Icon:    glyph.Class(BadgeIconClass(p.Size)),
		Label:   label,
		Class:   p.Class,
		Attrs:   p.Attrs,
	}
}

// PriceBadge renders a price with its trend.
func PriceBadge(p PriceBadgeProps) templ.Component {
	return Badge(p.Badge())
}

// VisaFreeBadgeProps configures a VisaFreeBadge.
type VisaFreeBadgeProps struct {
	Size  BadgeSize
	Label string
	Class string
	Attrs templ.Attributes
}

// Badge expands the preset into the base badge props.
func (p VisaFreeBadgeProps) Badge() BadgeProps {
	label := p.Label
	if label == "" {
		label = "Visa Free"
	}
	return BadgeProps{
		Variant: BadgeSuccess,
		Size:    p.Size,
		Icon:    icons.Passport.Class(BadgeIconClass(p.Size)),
		Label:   label,
		Class:   p.Class,
		Attrs:   p.Attrs,
	}
}

// VisaFreeBadge marks destinations that need no visa.
func VisaFreeBadge(p VisaFreeBadgeProps) templ.Component {
	return Badge(p.Badge())
}

// ThemeBadgeProps configures a ThemeBadge.
type ThemeBadgeProps struct {
	Theme theme.Key
	Size  BadgeSize
	Label string
	Class string
	Attrs templ.Attributes
}

// Badge expands the preset into the base badge props. The theme is validated
// so an unknown key renders as the default theme rather than uncolored.
func (p ThemeBadgeProps) Badge() BadgeProps {
	k := theme.Validate(string(p.Theme))
	label := p.Label
	if label == "" {
		label = theme.Label(k)
	}
	return BadgeProps{
		Variant: BadgeDefault,
		Size:    p.Size,
		Theme:   k,
		Icon:    ThemeGlyph(k).Class(BadgeIconClass(p.Size)),
		Label:   label,
		Class:   p.Class,
		Attrs:   p.Attrs,
	}
}

// ThemeBadge renders a destination theme in its own palette.
func ThemeBadge(p ThemeBadgeProps) templ.Component {
	return Badge(p.Badge())
}

// ThemeGlyph returns the icon associated with a theme.
func ThemeGlyph(k theme.Key) icons.Glyph {
	switch theme.Validate(string(k)) {
	case theme.Vibe:
		return icons.Music
	case theme.Nature:
		return icons.Leaf
	case theme.Indulge:
		return icons.Gem
	case theme.Discover:
		return icons.Compass
	default:
		return icons.Mountain
	}
}
