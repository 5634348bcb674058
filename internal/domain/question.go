package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves every question ordered by ID
	List(ctx context.Context) ([]*Question, error)

	// ListByCategory retrieves the questions of a category ordered by ID
	ListByCategory(ctx context.Context, categoryID int) ([]*Question, error)

	// Search retrieves questions whose text contains term, ignoring case
	Search(ctx context.Context, term string) ([]*Question, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create inserts a question and fills in its ID
	Create(ctx context.Context, question *Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int) error
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Event types published when the question set changes
const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

// QuestionEvent describes a change to the question set
type QuestionEvent struct {
	Type     string    `json:"type"`
	Question *Question `json:"question"`
}

// EventPublisher receives question events
type EventPublisher interface {
	Publish(event QuestionEvent)
}
