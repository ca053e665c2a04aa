package models

import (
	"strings"

	"gorm.io/gorm"
)

// Listing statuses shown on destination cards.
const (
	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"
	StatusError    = "error"
)

// Price trends over the last pricing window.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Destination is a catalogue entry rendered as a gallery card.
type Destination struct {
	gorm.Model
	Slug        string             `gorm:"uniqueIndex;size:64;not null" json:"slug"`
	Name        string             `gorm:"not null" json:"name"`
	Country     string             `gorm:"not null" json:"country"`
	Flag        string             `gorm:"size:16" json:"flag"`
	Theme       string             `gorm:"type:varchar(32);default:adventure" json:"theme"`
	Status      string             `gorm:"type:varchar(16);default:active" json:"status"`
	PriceFrom   int                `json:"price_from"`
	PriceTrend  string             `gorm:"type:varchar(16);default:stable" json:"price_trend"`
	VisaFree    bool               `gorm:"not null;default:false" json:"visa_free"`
	Rating      float64            `json:"rating"`
	Travellers  int                `json:"travellers"`
	BestMonths  string             `json:"best_months"`
	Insight     string             `gorm:"type:text" json:"insight"`
	InsightTone string             `gorm:"type:varchar(16)" json:"insight_tone"`
	Images      []DestinationImage `gorm:"foreignKey:DestinationID" json:"images"`
	Tags        []DestinationTag   `gorm:"foreignKey:DestinationID" json:"tags"`
}

// ImageURLs returns the image sources in display order.
func (d Destination) ImageURLs() []string {
	urls := make([]string, 0, len(d.Images))
	for _, image := range d.Images {
		urls = append(urls, image.URL)
	}
	return urls
}

// TagLabels returns the tag labels in display order.
func (d Destination) TagLabels() []string {
	labels := make([]string, 0, len(d.Tags))
	for _, tag := range d.Tags {
		labels = append(labels, tag.Label)
	}
	return labels
}

// NormalizeStatus maps unknown statuses to inactive.
func NormalizeStatus(status string) string {
	switch s := strings.ToLower(strings.TrimSpace(status)); s {
	case StatusActive, StatusPending, StatusInactive, StatusError:
		return s
	default:
		return StatusInactive
	}
}

// NormalizeTrend maps unknown trends to stable.
func NormalizeTrend(trend string) string {
	switch s := strings.ToLower(strings.TrimSpace(trend)); s {
	case TrendUp, TrendDown:
		return s
	default:
		return TrendStable
	}
}
