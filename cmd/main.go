// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"wordvault/internal/config"
	"wordvault/internal/events"
	"wordvault/internal/handlers"
	"wordvault/internal/middleware"
	"wordvault/internal/repository"
	"wordvault/internal/scheduler"
	"wordvault/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency injection.
	wordRepo := repository.NewGormWordRepository()
	stateRepo := repository.NewGormWordStateRepository()
	remRepo := repository.NewGormRemediationRepository()
	profRepo := repository.NewGormProfileRepository()
	sumRepo := repository.NewGormSummaryRepository()
	recRepo := repository.NewGormStudyRecordRepository()
	groupRepo := repository.NewGormGroupRepository()

	bus := events.NewBus(logger)
	defer bus.Close()

	groupService := service.NewGroupService(db, groupRepo, profRepo, sumRepo, cfg)
	progressService := service.NewProgressService(db, stateRepo, profRepo, sumRepo, recRepo, groupService, cfg)
	userService := service.NewUserService(db, profRepo, cfg)
	learningService := service.NewLearningService(db, wordRepo, stateRepo, remRepo, profRepo, recRepo, bus, cfg)
	reviewService := service.NewReviewService(db, stateRepo, remRepo, groupRepo, recRepo, bus, cfg)
	quizService := service.NewQuizService(db, wordRepo, nil)
	wordService := service.NewWordService(db, wordRepo)
	notifier := service.NewLogNotifier(logger)
	maintenanceService := service.NewMaintenanceService(db, profRepo, stateRepo, groupService, progressService, notifier, bus)

	// Summaries follow every state change through the bus.
	progressSub := progressService.SubscribeTo(bus)
	defer progressSub.Close()

	sched := scheduler.New(maintenanceService, time.Local, logger)
	if err := sched.Start(); err != nil {
		slog.Error("Error starting scheduler", slog.Any("error", err))
		os.Exit(1)
	}
	defer sched.Stop()

	userHandler := handlers.NewUserHandler(userService, progressService)
	learningHandler := handlers.NewLearningHandler(learningService, quizService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	groupHandler := handlers.NewGroupHandler(groupService)
	wordHandler := handlers.NewWordHandler(wordService)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Auth.Enabled {
			slog.Info("Applying JWT authentication middleware")
			r.Use(middleware.JWTAuthMiddleware(cfg))
		} else {
			slog.Warn("Authentication disabled, using development user middleware")
			r.Use(middleware.DevUserContextMiddleware(cfg.Auth.DevUserID))
		}

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Register)
			r.Get("/me", userHandler.GetMe)
			r.Patch("/me", userHandler.PatchMe)
			r.Get("/me/progress", userHandler.GetProgress)
		})

		r.Route("/learning", func(r chi.Router) {
			r.Get("/batch", learningHandler.GetTodayBatch)
			r.Post("/quiz", learningHandler.BuildQuiz)
			r.Post("/session", learningHandler.BuildSessionQuiz)
			r.Post("/complete", learningHandler.Complete)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/immediate", reviewHandler.GetImmediate)
			r.Get("/cumulative", reviewHandler.GetCumulative)
			r.Get("/cumulative/count", reviewHandler.GetCumulativeCount)
			r.Post("/answers", reviewHandler.SubmitAnswer)
		})

		r.Route("/words", func(r chi.Router) {
			r.Get("/", wordHandler.List)
			r.Post("/", wordHandler.Import)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Post("/", groupHandler.Create)
			r.Post("/join", groupHandler.Join)
			r.Get("/", groupHandler.MyGroups)
			r.Get("/{group_id}", groupHandler.Details)
			r.Delete("/{group_id}/members/me", groupHandler.Leave)
			r.Delete("/{group_id}/members/{user_id}", groupHandler.Kick)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.PingContext(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
