package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionRepository stores questions in SQLite through gorm.
type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) List(ctx context.Context) ([]*domain.Question, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]*domain.Question, error) {
	return r.find(r.db.WithContext(ctx).Where("category = ?", categoryID))
}

// Search matches term against the question text. SQLite folds ASCII case
// only, so matching happens here with Unicode case folding.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	all, err := r.find(r.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(term)
	matches := []*domain.Question{}
	for _, q := range all {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	var record questionRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	switch {
	case err == nil:
		return record.toDomain(), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domain.ErrQuestionNotFound
	default:
		return nil, fmt.Errorf("find question: %w", err)
	}
}

func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	record := questionRecord{
		Question:   question.Question,
		Answer:     question.Answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	question.ID = record.ID
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&questionRecord{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) find(db *gorm.DB) ([]*domain.Question, error) {
	var records []questionRecord
	if err := db.Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	questions := make([]*domain.Question, 0, len(records))
	for _, rec := range records {
		questions = append(questions, rec.toDomain())
	}
	return questions, nil
}
