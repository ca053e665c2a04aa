package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"tripdeck/internal/config"
	"tripdeck/internal/db"
	applog "tripdeck/internal/log"
	"tripdeck/internal/views/theme"
	"tripdeck/models"
)

var (
	numberPattern   = regexp.MustCompile(`[-+]?\d*\.?\d+`)
	cleanWhitespace = regexp.MustCompile(`\s+`)
	slugPattern     = regexp.MustCompile(`[^a-z0-9]+`)
)

func main() {
	csvPath := "destinations.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	ctx := context.Background()
	if err := run(ctx, csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, csvPath string) error {
	if strings.TrimSpace(csvPath) == "" {
		return fmt.Errorf("csv path must not be empty")
	}

	if _, err := os.Stat(csvPath); err != nil {
		return fmt.Errorf("locate csv: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}

	database, err := db.Configure(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	imported, err := importFile(ctx, database, csvPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Imported %d destinations from %s\n", imported, filepath.Base(csvPath))
	return nil
}

func importFile(ctx context.Context, database *gorm.DB, csvPath string) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("read csv: %w", err)
	}
	defer file.Close()

	records, err := readCSV(file)
	if err != nil {
		return 0, fmt.Errorf("read csv: %w", err)
	}
	return importRecords(ctx, database, records)
}

// importRecords upserts each record by slug in its own transaction. Images
// and tags of an existing destination are replaced, not merged.
func importRecords(ctx context.Context, database *gorm.DB, records []map[string]string) (int, error) {
	if database == nil {
		return 0, gorm.ErrInvalidDB
	}

	imported := 0
	for idx, record := range records {
		destination, err := buildDestination(record)
		if err != nil {
			return imported, fmt.Errorf("record %d: %w", idx+1, err)
		}

		if err := database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			images, tags := destination.Images, destination.Tags
			destination.Images, destination.Tags = nil, nil

			var existing models.Destination
			err := tx.Where("slug = ?", destination.Slug).First(&existing).Error
			switch {
			case err == nil:
				updates := map[string]any{
					"name":         destination.Name,
					"country":      destination.Country,
					"flag":         destination.Flag,
					"theme":        destination.Theme,
					"status":       destination.Status,
					"price_from":   destination.PriceFrom,
					"price_trend":  destination.PriceTrend,
					"visa_free":    destination.VisaFree,
					"rating":       destination.Rating,
					"travellers":   destination.Travellers,
					"best_months":  destination.BestMonths,
					"insight":      destination.Insight,
					"insight_tone": destination.InsightTone,
				}
				if err := tx.Model(&existing).Updates(updates).Error; err != nil {
					return fmt.Errorf("update destination %q: %w", destination.Slug, err)
				}
				destination.ID = existing.ID
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&destination).Error; err != nil {
					return fmt.Errorf("create destination %q: %w", destination.Slug, err)
				}
			default:
				return fmt.Errorf("find destination %q: %w", destination.Slug, err)
			}

			if destination.ID == 0 {
				return fmt.Errorf("missing primary key for %q after upsert", destination.Slug)
			}
			return replaceMedia(tx, destination.ID, images, tags)
		}); err != nil {
			return imported, fmt.Errorf("record %d (%s): %w", idx+1, record["Slug"], err)
		}
		applog.Debug(ctx, "destination imported", "slug", destination.Slug)
		imported++
	}
	return imported, nil
}

func replaceMedia(tx *gorm.DB, destinationID uint, images []models.DestinationImage, tags []models.DestinationTag) error {
	if err := tx.Unscoped().Where("destination_id = ?", destinationID).Delete(&models.DestinationImage{}).Error; err != nil {
		return fmt.Errorf("clear images: %w", err)
	}
	if err := tx.Unscoped().Where("destination_id = ?", destinationID).Delete(&models.DestinationTag{}).Error; err != nil {
		return fmt.Errorf("clear tags: %w", err)
	}
	for i := range images {
		images[i].DestinationID = destinationID
	}
	for i := range tags {
		tags[i].DestinationID = destinationID
	}
	if len(images) > 0 {
		if err := tx.Create(&images).Error; err != nil {
			return fmt.Errorf("create images: %w", err)
		}
	}
	if len(tags) > 0 {
		if err := tx.Create(&tags).Error; err != nil {
			return fmt.Errorf("create tags: %w", err)
		}
	}
	return nil
}

func readCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.New("csv is empty")
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		record := make(map[string]string, len(header))
		for idx, key := range header {
			if idx >= len(row) {
				continue
			}
			record[strings.TrimSpace(key)] = strings.TrimSpace(row[idx])
		}
		records = append(records, record)
	}

	return records, nil
}

func buildDestination(row map[string]string) (models.Destination, error) {
	name := normalizeText(row["Name"])
	if name == "" {
		return models.Destination{}, errors.New("name is required")
	}
	slug := slugify(row["Slug"])
	if slug == "" {
		slug = slugify(name)
	}

	destination := models.Destination{
		Slug:        slug,
		Name:        name,
		Country:     normalizeText(row["Country"]),
		Flag:        normalizeValue(row["Flag"]),
		Theme:       theme.Validate(row["Theme"]).String(),
		Status:      models.NormalizeStatus(row["Status"]),
		PriceFrom:   int(parseFirstNumber(strings.ReplaceAll(row["Price From"], ",", ""))),
		PriceTrend:  models.NormalizeTrend(row["Price Trend"]),
		VisaFree:    parseYes(row["Visa Free"]),
		Rating:      parseFirstNumber(row["Rating"]),
		Travellers:  int(parseFirstNumber(strings.ReplaceAll(row["Travellers"], ",", ""))),
		BestMonths:  normalizeValue(row["Best Months"]),
		Insight:     normalizeText(row["Insight"]),
		InsightTone: strings.ToLower(normalizeValue(row["Insight Tone"])),
	}

	for i, url := range splitList(row["Images"], ";") {
		destination.Images = append(destination.Images, models.DestinationImage{Position: i, URL: url})
	}
	seen := map[string]struct{}{}
	for _, label := range splitList(row["Tags"], ";,") {
		key := strings.ToLower(label)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		destination.Tags = append(destination.Tags, models.DestinationTag{Label: label})
	}

	return destination, nil
}

func normalizeValue(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "N/A") {
		return ""
	}
	return value
}

func normalizeText(value string) string {
	value = normalizeValue(value)
	if value == "" {
		return value
	}
	return strings.TrimSpace(cleanWhitespace.ReplaceAllString(value, " "))
}

func parseFirstNumber(value string) float64 {
	value = normalizeValue(value)
	if value == "" {
		return 0
	}

	match := numberPattern.FindString(value)
	if match == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseYes(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}

func splitList(value, separators string) []string {
	value = normalizeValue(value)
	if value == "" {
		return nil
	}
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := normalizeText(part); clean != "" {
			result = append(result, clean)
		}
	}
	return result
}

func slugify(value string) string {
	value = strings.ToLower(value)
	value = slugPattern.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}
