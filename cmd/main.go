package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/saptohadi/wicara/adapters/feedback"
	geminiclient "github.com/saptohadi/wicara/adapters/gemini"
	"github.com/saptohadi/wicara/adapters/memory"
	"github.com/saptohadi/wicara/adapters/perception"
	"github.com/saptohadi/wicara/adapters/questions"
	"github.com/saptohadi/wicara/adapters/stt"
	"github.com/saptohadi/wicara/adapters/tts"
	"github.com/saptohadi/wicara/domain/repositories"
	"github.com/saptohadi/wicara/internal/api"
	"github.com/saptohadi/wicara/internal/auth"
	"github.com/saptohadi/wicara/internal/config"
	"github.com/saptohadi/wicara/internal/events"
	"github.com/saptohadi/wicara/internal/media"
	"github.com/saptohadi/wicara/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}
	cfg := config.Load()

	ctx := context.Background()

	// Provider wiring. The mock strategy is a permanently supported
	// configuration, not a fallback: a missing credential with a remote
	// strategy selected is a startup failure.
	var (
		transcriber  repositories.Transcriber
		toneAnalyzer repositories.ToneAnalyzer
		visionAnal   repositories.VisionAnalyzer
		feedbackGen  repositories.FeedbackGenerator
		questionGen  repositories.QuestionGenerator
		speech       repositories.TextToSpeech
	)

	if cfg.Transcriber == "mock" {
		transcriber = stt.NewMockTranscriber(logger)
		toneAnalyzer = perception.NewMockToneAnalyzer(logger)
		visionAnal = perception.NewMockVisionAnalyzer(logger)
		feedbackGen = feedback.NewMockGenerator(logger)
		questionGen = questions.NewMockGenerator(logger)
		speech = tts.NewMockTTS(logger)
		logger.Info("Using mock providers")
	} else {
		client, err := geminiclient.NewClient(ctx, geminiclient.Config{
			APIKey:       cfg.GeminiAPIKey,
			Model:        cfg.GeminiModel,
			PollInterval: cfg.PollInterval,
			PollTimeout:  cfg.PollTimeout,
		}, logger)
		if err != nil {
			logger.Fatal("Gemini client initialization failed", zap.Error(err))
		}

		switch cfg.Transcriber {
		case "gemini":
			transcriber = stt.NewGeminiTranscriber(client, logger)
		case "google":
			transcriber, err = stt.NewGoogleTranscriber(ctx, logger)
			if err != nil {
				logger.Fatal("Google Speech transcriber initialization failed", zap.Error(err))
			}
		default:
			logger.Fatal("Unknown transcriber strategy", zap.String("transcriber", cfg.Transcriber))
		}

		toneAnalyzer = perception.NewGeminiToneAnalyzer(client, logger)
		visionAnal = perception.NewGeminiVisionAnalyzer(client, logger)
		feedbackGen = feedback.NewGeminiGenerator(client, logger)
		questionGen = questions.NewGeminiGenerator(client, logger)
		speech = tts.NewGeminiTTS(client, logger)
		logger.Info("Using Gemini providers",
			zap.String("model", client.Model()),
			zap.String("transcriber", cfg.Transcriber))
	}

	// Storage
	sessions := memory.NewSessionRepository(logger)
	mediaStore, err := media.NewDiskStore(cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("Media store initialization failed", zap.Error(err))
	}

	// Progress event hub
	hub := events.NewHub(logger)
	go hub.Run()

	// Usecase services
	interviews := usecase.NewInterviewService(sessions, questionGen, mediaStore, speech, hub, logger)
	analysis := usecase.NewAnalysisService(sessions, transcriber, toneAnalyzer, visionAnal, feedbackGen, hub, logger)

	// Create Echo instance
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	handler := api.NewHandler(interviews, analysis, hub, auth.NewTokenIssuer(cfg.JWTSecret), logger)
	api.InitRoutes(e, handler)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
