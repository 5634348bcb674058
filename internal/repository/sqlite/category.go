package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// CategoryRepository reads categories from SQLite.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]*domain.Category, 0, len(records))
	for _, rec := range records {
		categories = append(categories, &domain.Category{ID: rec.ID, Type: rec.Type})
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	var record categoryRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	switch {
	case err == nil:
		return &domain.Category{ID: record.ID, Type: record.Type}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domain.ErrCategoryNotFound
	default:
		return nil, fmt.Errorf("find category: %w", err)
	}
}
