package models

import "gorm.io/gorm"

// DestinationImage is one carousel frame of a destination.
type DestinationImage struct {
	gorm.Model
	DestinationID uint   `gorm:"index;not null" json:"destination_id"`
	Position      int    `gorm:"not null;default:0" json:"position"`
	URL           string `gorm:"not null" json:"url"`
	Caption       string `json:"caption"`
}

// DestinationTag is a dismissible label chip on a destination card.
type DestinationTag struct {
	gorm.Model
	DestinationID uint   `gorm:"index;not null" json:"destination_id"`
	Label         string `gorm:"not null" json:"label"`
}
