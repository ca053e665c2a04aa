package pages

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tripdeck/internal/views/components"
	"tripdeck/models"
)

var printer = message.NewPrinter(language.English)

// FormatPrice renders a whole-dollar price with grouping, e.g. $1,840.
func FormatPrice(amount int) string {
	if amount <= 0 {
		return DefaultDash("")
	}
	return printer.Sprintf("$%d", amount)
}

// FormatCount renders a count with grouping, e.g. 12,400.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatRating renders a rating with one decimal.
func FormatRating(rating float64) string {
	if rating <= 0 {
		return DefaultDash("")
	}
	return printer.Sprintf("%.1f", rating)
}

// DefaultDash returns a dash when the provided value is empty or whitespace.
func DefaultDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// StatusFor maps a stored listing status onto the status badge preset.
func StatusFor(status string) components.Status {
	switch models.NormalizeStatus(status) {
	case models.StatusActive:
		return components.StatusActive
	case models.StatusPending:
		return components.StatusPending
	case models.StatusError:
		return components.StatusError
	default:
		return components.StatusInactive
	}
}

// TrendFor maps a stored price trend onto the price badge preset.
func TrendFor(trend string) components.Trend {
	switch models.NormalizeTrend(trend) {
	case models.TrendUp:
		return components.TrendUp
	case models.TrendDown:
		return components.TrendDown
	default:
		return components.TrendStable
	}
}

// InsightToneFor maps a stored insight tone name onto a callout tone. Unknown
// names render as info.
func InsightToneFor(tone string) components.InsightTone {
	switch strings.ToLower(strings.TrimSpace(tone)) {
	case "price":
		return components.InsightPrice
	case "trend":
		return components.InsightTrend
	case "urgency":
		return components.InsightUrgency
	case "warning":
		return components.InsightWarning
	case "success":
		return components.InsightSuccess
	default:
		return components.InsightInfo
	}
}

// TagSlug is the URL-safe form of a tag label.
func TagSlug(label string) string {
	return components.FieldID(label, "")
}
