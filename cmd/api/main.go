package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	gommonlog "github.com/labstack/gommon/log"
	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/repository/sqlite"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/session"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	var (
		questionRepo domain.QuestionRepository
		categoryRepo domain.CategoryRepository
	)
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := database.ConnectSQLite(cfg.SQLitePath, sqlite.Models()...)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		if err := sqlite.SeedCategories(ctx, db, sqlite.DefaultCategories); err != nil {
			log.Fatalf("Failed to seed categories: %v", err)
		}
		questionRepo = sqlite.NewQuestionRepository(db)
		categoryRepo = sqlite.NewCategoryRepository(db)
	default:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()
		questionRepo = postgres.NewQuestionRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
	}

	logger := gommonlog.New("trivia")
	logger.SetLevel(cfg.LogLevel)

	// Initialize websocket hub
	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	// Initialize services
	triviaService := service.NewTriviaService(questionRepo, categoryRepo, service.NewQuizSelector(nil), hub)

	routerCfg := handler.RouterConfig{
		Service:   triviaService,
		Hub:       hub,
		Logger:    logger,
		LogLevel:  cfg.LogLevel,
		AccessLog: true,
	}

	// Initialize Redis client
	if cfg.RedisEnabled {
		redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		routerCfg.QuizLimiter = session.NewRateLimiter(redisClient, "quizzes", cfg.QuizRateLimit, cfg.QuizRateWindow)
	}

	e := handler.NewRouter(routerCfg)

	// Start server
	go func() {
		if err := e.Start(cfg.ServerAddr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
