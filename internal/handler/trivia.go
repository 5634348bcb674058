package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// TriviaHandler handles the category, question and quiz endpoints
type TriviaHandler struct {
	triviaService *service.TriviaService
}

// NewTriviaHandler creates a new trivia handler
func NewTriviaHandler(triviaService *service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		triviaService: triviaService,
	}
}

// Register registers the trivia routes. quizMiddleware wraps POST /quizzes.
func (h *TriviaHandler) Register(e *echo.Echo, quizMiddleware ...echo.MiddlewareFunc) {
	e.GET("/categories", h.GetCategories)
	e.GET("/categories/:id/questions", h.GetQuestionsByCategory)
	e.GET("/questions", h.GetQuestions)
	e.POST("/questions", h.PostQuestion)
	e.DELETE("/questions/:id", h.DeleteQuestion)
	e.POST("/quizzes", h.PlayQuiz, quizMiddleware...)
}

// CategoriesResponse lists categories keyed by ID
type CategoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

// QuestionsResponse is a page of all questions
type QuestionsResponse struct {
	Success        bool               `json:"success"`
	Questions      []*domain.Question `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
	Categories     map[int]string     `json:"categories"`
}

// CategoryQuestionsResponse is a page of a category's questions
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []*domain.Question `json:"questions"`
	TotalQuestions  int                `json:"totalQuestions"`
	CurrentCategory string             `json:"current_category"`
}

// SearchResponse is a page of search matches
type SearchResponse struct {
	Success        bool               `json:"success"`
	Questions      []*domain.Question `json:"questions"`
	TotalQuestions int                `json:"totalQuestions"`
}

// DeleteQuestionResponse confirms a deletion
type DeleteQuestionResponse struct {
	Success  bool `json:"success"`
	Question int  `json:"question"`
}

// CreateQuestionResponse confirms a creation
type CreateQuestionResponse struct {
	Success         bool               `json:"success"`
	Created         int                `json:"created"`
	QuestionCreated string             `json:"question_created"`
	Questions       []*domain.Question `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
}

// QuizResponse carries the next quiz question; Question is omitted once the
// quiz is exhausted
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question,omitempty"`
}

// PostQuestionRequest is either a search (non-empty searchTerm) or a new question
type PostQuestionRequest struct {
	SearchTerm string          `json:"searchTerm"`
	Question   *string         `json:"question" validate:"required"`
	Answer     *string         `json:"answer" validate:"required"`
	Difficulty *domain.FlexInt `json:"difficulty" validate:"required"`
	Category   *domain.FlexInt `json:"category" validate:"required"`
}

// QuizCategory selects the quiz scope; ID 0 means every category
type QuizCategory struct {
	ID   *domain.FlexInt `json:"id" validate:"required"`
	Type string          `json:"type"`
}

// PlayQuizRequest represents the request for the next quiz question
type PlayQuizRequest struct {
	PreviousQuestions []domain.FlexInt `json:"previous_questions" validate:"required"`
	QuizCategory      *QuizCategory    `json:"quiz_category" validate:"required"`
}

// GetCategories lists every category
func (h *TriviaHandler) GetCategories(c echo.Context) error {
	categories, err := h.triviaService.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: domain.CategoryMap(categories),
	})
}

// GetQuestions returns a page of all questions with the category lookup
func (h *TriviaHandler) GetQuestions(c echo.Context) error {
	listing, err := h.triviaService.ListQuestions(c.Request().Context(), pageParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Success:        true,
		Questions:      listing.Questions,
		TotalQuestions: listing.Total,
		Categories:     domain.CategoryMap(listing.Categories),
	})
}

// DeleteQuestion deletes a question by ID.
// A missing question is reported as 422 like any other failure; clients
// depend on that status.
func (h *TriviaHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}

	if err := h.triviaService.DeleteQuestion(c.Request().Context(), id); err != nil {
		return unprocessable(err)
	}

	return c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success:  true,
		Question: id,
	})
}

// PostQuestion searches questions or creates one depending on the payload
func (h *TriviaHandler) PostQuestion(c echo.Context) error {
	var req PostQuestionRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(err)
	}

	if req.SearchTerm != "" {
		return h.searchQuestions(c, req.SearchTerm)
	}

	if err := c.Validate(&req); err != nil {
		return unprocessable(err)
	}

	created, page, err := h.triviaService.CreateQuestion(c.Request().Context(), service.NewQuestion{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   req.Category.Int(),
		Difficulty: req.Difficulty.Int(),
	}, pageParam(c))
	if err != nil {
		return unprocessable(err)
	}

	return c.JSON(http.StatusOK, CreateQuestionResponse{
		Success:         true,
		Created:         created.ID,
		QuestionCreated: created.Question,
		Questions:       page.Questions,
		TotalQuestions:  page.Total,
	})
}

func (h *TriviaHandler) searchQuestions(c echo.Context, term string) error {
	page, err := h.triviaService.SearchQuestions(c.Request().Context(), term, pageParam(c))
	if err != nil {
		if errors.Is(err, service.ErrNoSearchResults) {
			return notFound(err)
		}
		return err
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Success:        true,
		Questions:      page.Questions,
		TotalQuestions: page.Total,
	})
}

// GetQuestionsByCategory returns a page of the questions of a category.
// An unknown category is a bad request.
func (h *TriviaHandler) GetQuestionsByCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}

	category, page, err := h.triviaService.QuestionsByCategory(c.Request().Context(), id, pageParam(c))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return badRequest(err)
		}
		return err
	}

	return c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       page.Questions,
		TotalQuestions:  page.Total,
		CurrentCategory: category.Type,
	})
}

// PlayQuiz returns a random question the player has not seen yet
func (h *TriviaHandler) PlayQuiz(c echo.Context) error {
	var req PlayQuizRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}

	if err := c.Validate(&req); err != nil {
		return badRequest(err)
	}

	previous := make([]int, 0, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		previous = append(previous, id.Int())
	}

	question, err := h.triviaService.NextQuizQuestion(c.Request().Context(), req.QuizCategory.ID.Int(), previous)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}

// pageParam reads the 1-based page query parameter, defaulting to 1
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}
	return page
}
