package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/zizouhuweidi/trivia/internal/service"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

// RouterConfig collects the dependencies of the HTTP API
type RouterConfig struct {
	Service *service.TriviaService
	// Hub enables the live question feed on /ws when set
	Hub *ws.Hub
	// QuizLimiter rate limits POST /quizzes when set
	QuizLimiter Limiter
	// Logger replaces echo's default logger when set
	Logger   echo.Logger
	LogLevel log.Lvl
	// AccessLog enables request logging
	AccessLog bool
}

// NewRouter builds the echo instance serving the API
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	if cfg.Logger != nil {
		e.Logger = cfg.Logger
	}
	e.Logger.SetLevel(cfg.LogLevel)
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Validator = NewValidator()

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if cfg.AccessLog {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
	}))

	var quizMiddleware []echo.MiddlewareFunc
	if cfg.QuizLimiter != nil {
		quizMiddleware = append(quizMiddleware, RateLimit(cfg.QuizLimiter))
	}
	NewTriviaHandler(cfg.Service).Register(e, quizMiddleware...)

	if cfg.Hub != nil {
		e.GET("/ws", NewWebSocketHandler(cfg.Hub).HandleWebSocket)
	}

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	return e
}
