package mock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tripdeck/internal/db"
	applog "tripdeck/internal/log"
	"tripdeck/models"
)

// New returns an in-memory sqlite catalogue seeded with one destination per
// theme. Every call gets its own database.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock catalogue")

	dsn := fmt.Sprintf("file:tripdeck-%s?mode=memory&cache=shared", uuid.NewString())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(database); err != nil {
		return nil, err
	}

	if err := seed(ctx, database); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock catalogue ready")
	return database, nil
}

// Destinations returns the fixture records New seeds.
func Destinations() []models.Destination {
	return []models.Destination{
		{
			Slug:        "queenstown",
			Name:        "Queenstown",
			Country:     "New Zealand",
			Flag:        "🇳🇿",
			Theme:       "adventure",
			Status:      models.StatusActive,
			PriceFrom:   1840,
			PriceTrend:  models.TrendUp,
			VisaFree:    true,
			Rating:      4.9,
			Travellers:  12400,
			BestMonths:  "Dec to Feb",
			Insight:     "Bungee slots sell out three weeks ahead in summer.",
			InsightTone: "urgency",
			Images:      images("queenstown", 3),
			Tags:        tags("Bungee", "Hiking", "Lakes"),
		},
		{
			Slug:        "ibiza",
			Name:        "Ibiza",
			Country:     "Spain",
			Flag:        "🇪🇸",
			Theme:       "vibe",
			Status:      models.StatusPending,
			PriceFrom:   960,
			PriceTrend:  models.TrendDown,
			VisaFree:    true,
			Rating:      4.6,
			Travellers:  48210,
			BestMonths:  "Jun to Sep",
			Insight:     "Flights are 18% cheaper than last month.",
			InsightTone: "price",
			Images:      images("ibiza", 4),
			Tags:        tags("Nightlife", "Beach"),
		},
		{
			Slug:        "banff",
			Name:        "Banff",
			Country:     "Canada",
			Flag:        "🇨🇦",
			Theme:       "nature",
			Status:      models.StatusActive,
			PriceFrom:   1320,
			PriceTrend:  models.TrendStable,
			VisaFree:    false,
			Rating:      4.8,
			Travellers:  20950,
			BestMonths:  "Jun to Aug",
			Insight:     "Park passes now require advance booking.",
			InsightTone: "warning",
			Images:      images("banff", 2),
			Tags:        tags("Wildlife", "Lakes", "Camping"),
		},
		{
			Slug:        "maldives",
			Name:        "Maldives",
			Country:     "Maldives",
			Flag:        "🇲🇻",
			Theme:       "indulge",
			Status:      models.StatusInactive,
			PriceFrom:   4210,
			PriceTrend:  models.TrendUp,
			VisaFree:    true,
			Rating:      4.7,
			Travellers:  6120,
			BestMonths:  "Nov to Apr",
			Insight:     "Overwater villas trend 3x in saved searches.",
			InsightTone: "trend",
			Images:      images("maldives", 1),
			Tags:        tags("Spa"),
		},
		{
			Slug:        "kyoto",
			Name:        "Kyoto",
			Country:     "Japan",
			Flag:        "🇯🇵",
			Theme:       "discover",
			Status:      models.StatusError,
			PriceFrom:   1590,
			PriceTrend:  models.TrendDown,
			VisaFree:    true,
			Rating:      4.9,
			Travellers:  35870,
			BestMonths:  "Mar to May",
			Insight:     "Supplier feed failed its last sync.",
			InsightTone: "info",
			Images:      images("kyoto", 3),
			Tags:        tags("Temples", "Food"),
		},
	}
}

func images(slug string, count int) []models.DestinationImage {
	out := make([]models.DestinationImage, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, models.DestinationImage{
			Position: i,
			URL:      fmt.Sprintf("/assets/img/%s-%d.jpg", slug, i+1),
			Caption:  fmt.Sprintf("%s %d", slug, i+1),
		})
	}
	return out
}

func tags(labels ...string) []models.DestinationTag {
	out := make([]models.DestinationTag, 0, len(labels))
	for _, label := range labels {
		out = append(out, models.DestinationTag{Label: label})
	}
	return out
}

func seed(ctx context.Context, database *gorm.DB) error {
	applog.Debug(ctx, "seeding mock catalogue")

	for _, destination := range Destinations() {
		destinationCopy := destination
		if err := database.WithContext(ctx).Create(&destinationCopy).Error; err != nil {
			return fmt.Errorf("seed %s: %w", destination.Slug, err)
		}
	}

	applog.Debug(ctx, "mock catalogue seeded")
	return nil
}
