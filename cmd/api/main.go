package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"opportunity-match-backend/config"
	v1 "opportunity-match-backend/internal/delivery/http/v1"
	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/internal/repository/memory"
	"opportunity-match-backend/internal/repository/postgres"
	"opportunity-match-backend/internal/usecase"
	"opportunity-match-backend/pkg/auth"
	"opportunity-match-backend/pkg/database"
	"opportunity-match-backend/pkg/email"
	"opportunity-match-backend/pkg/logger"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting opportunity-match backend", "port", cfg.Port)

	// 3. Setup Store
	var (
		accountRepo   domain.AccountRepository
		candidateRepo domain.CandidateRepository
		recruiterRepo domain.RecruiterRepository
		jobRepo       domain.JobRepository
	)

	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		migrateDB, err := database.OpenSQL(cfg.DatabaseURL)
		if err != nil {
			logger.Log.Error("Failed to open database for migrations", "error", err)
			os.Exit(1)
		}
		if err := postgres.RunMigrations(ctx, migrateDB); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
		migrateDB.Close()

		pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		accountRepo = postgres.NewAccountRepository(pool)
		candidateRepo = postgres.NewCandidateRepository(pool)
		recruiterRepo = postgres.NewRecruiterRepository(pool)
		jobRepo = postgres.NewJobRepository(pool)
		logger.Log.Info("Using postgres store")
	} else {
		accountRepo = memory.NewAccountRepository()
		candidateRepo = memory.NewCandidateRepository()
		recruiterRepo = memory.NewRecruiterRepository()
		jobRepo = memory.NewJobRepository()
		logger.Log.Warn("DATABASE_URL not set, using in-memory store; data is lost on shutdown")
	}

	// 4. Setup UseCases
	validate := validator.New()
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	var notifier domain.ApplicationNotifier
	if cfg.SMTPHost != "" {
		notifier = email.NewService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
		logger.Log.Info("Application alert mail enabled", "smtp_host", cfg.SMTPHost)
	}

	accountUC := usecase.NewAccountUsecase(accountRepo, candidateRepo, recruiterRepo, jobRepo, hasher, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, recruiterRepo)
	applicationUC := usecase.NewApplicationUsecase(jobRepo, accountRepo, candidateRepo, recruiterRepo, notifier)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AccountUC:     accountUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		CandidateUC:   candidateUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
