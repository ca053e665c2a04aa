package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tripdeck/models"
)

// ListDestinations loads every destination with images in position order and
// tags in insertion order, sorted by name.
func ListDestinations(ctx context.Context, database *gorm.DB) ([]models.Destination, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}
	var destinations []models.Destination
	err := preloadCatalogue(database.WithContext(ctx)).
		Order("name ASC").
		Find(&destinations).Error
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return destinations, nil
}

// FindDestination loads a single destination by primary key.
func FindDestination(ctx context.Context, database *gorm.DB, id uint) (*models.Destination, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}
	var destination models.Destination
	if err := preloadCatalogue(database.WithContext(ctx)).First(&destination, id).Error; err != nil {
		return nil, fmt.Errorf("find destination %d: %w", id, err)
	}
	return &destination, nil
}

func preloadCatalogue(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		})
}
