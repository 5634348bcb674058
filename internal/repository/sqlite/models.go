package sqlite

import "github.com/zizouhuweidi/trivia/internal/domain"

// questionRecord is the gorm mapping of the questions table
type questionRecord struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	Question   string `gorm:"not null"`
	Answer     string `gorm:"not null"`
	Category   int    `gorm:"index"`
	Difficulty int
}

func (questionRecord) TableName() string { return "questions" }

func (r questionRecord) toDomain() *domain.Question {
	return &domain.Question{
		ID:         r.ID,
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   r.Category,
		Difficulty: r.Difficulty,
	}
}

// categoryRecord is the gorm mapping of the categories table
type categoryRecord struct {
	ID   int    `gorm:"primaryKey"`
	Type string `gorm:"not null"`
}

func (categoryRecord) TableName() string { return "categories" }

// Models lists the records to migrate when opening the database
func Models() []any {
	return []any{&questionRecord{}, &categoryRecord{}}
}
