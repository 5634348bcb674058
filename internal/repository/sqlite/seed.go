package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// DefaultCategories are the categories the front end ships icons for.
var DefaultCategories = []domain.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// SeedCategories inserts categories, leaving existing IDs untouched.
func SeedCategories(ctx context.Context, db *gorm.DB, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}
	records := make([]categoryRecord, 0, len(categories))
	for _, c := range categories {
		records = append(records, categoryRecord{ID: c.ID, Type: c.Type})
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&records).Error
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}
