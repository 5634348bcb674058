package service

import (
	"context"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// AllCategories selects questions from every category when playing a quiz
const AllCategories = 0

// QuestionPage is one page of a question collection together with the
// size of the collection it was cut from
type QuestionPage struct {
	Questions []*domain.Question
	Total     int
}

// QuestionListing is a page of all questions plus the category lookup
type QuestionListing struct {
	QuestionPage
	Categories []*domain.Category
}

// NewQuestion holds the fields required to create a question
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// TriviaService implements the trivia operations on top of the repositories
type TriviaService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	selector   *QuizSelector
	events     domain.EventPublisher
}

// NewTriviaService creates a new trivia service. events may be nil.
func NewTriviaService(questions domain.QuestionRepository, categories domain.CategoryRepository, selector *QuizSelector, events domain.EventPublisher) *TriviaService {
	if selector == nil {
		selector = NewQuizSelector(nil)
	}
	return &TriviaService{
		questions:  questions,
		categories: categories,
		selector:   selector,
		events:     events,
	}
}

// ListCategories returns every category
func (s *TriviaService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

// ListQuestions returns a page of all questions, the total question count and all categories
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionListing, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionListing{
		QuestionPage: QuestionPage{
			Questions: Paginate(questions, page),
			Total:     len(questions),
		},
		Categories: categories,
	}, nil
}

// DeleteQuestion removes a question. It returns domain.ErrQuestionNotFound
// when no question has the given ID.
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) error {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(domain.EventQuestionDeleted, question)
	return nil
}

// CreateQuestion stores a new question and returns it along with the
// requested page of all questions
func (s *TriviaService) CreateQuestion(ctx context.Context, req NewQuestion, page int) (*domain.Question, *QuestionPage, error) {
	question := &domain.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}

	if err := s.questions.Create(ctx, question); err != nil {
		return nil, nil, err
	}
	s.publish(domain.EventQuestionCreated, question)

	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reload questions: %w", err)
	}

	return question, &QuestionPage{
		Questions: Paginate(questions, page),
		Total:     len(questions),
	}, nil
}

// SearchQuestions returns a page of the questions whose text contains term,
// ignoring case. Total counts the matches. It returns ErrNoSearchResults when
// nothing matches.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	term = validation.NormalizeSearchTerm(term)
	if term == "" {
		return nil, ErrNoSearchResults
	}

	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNoSearchResults
	}

	return &QuestionPage{
		Questions: Paginate(matches, page),
		Total:     len(matches),
	}, nil
}

// QuestionsByCategory returns the category and a page of its questions.
// It returns domain.ErrCategoryNotFound for an unknown category.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int, page int) (*domain.Category, *QuestionPage, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	questions, err := s.questions.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, nil, err
	}

	return category, &QuestionPage{
		Questions: Paginate(questions, page),
		Total:     len(questions),
	}, nil
}

// NextQuizQuestion picks a random question from the category (or from all
// categories for AllCategories) that is not listed in previous. A nil
// question with a nil error means the quiz is exhausted.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	var (
		candidates []*domain.Question
		err        error
	)
	if categoryID == AllCategories {
		candidates, err = s.questions.List(ctx)
	} else {
		candidates, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	return s.selector.Next(candidates, previous), nil
}

func (s *TriviaService) publish(eventType string, question *domain.Question) {
	if s.events == nil {
		return
	}
	s.events.Publish(domain.QuestionEvent{Type: eventType, Question: question})
}
