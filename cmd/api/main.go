package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"placement-portal-backend/config"
	_ "placement-portal-backend/docs"
	v1 "placement-portal-backend/internal/delivery/http/v1"
	"placement-portal-backend/internal/domain"
	"placement-portal-backend/internal/repository/postgres"
	"placement-portal-backend/internal/usecase"
	"placement-portal-backend/migrations"
	"placement-portal-backend/pkg/auth"
	"placement-portal-backend/pkg/database"
	"placement-portal-backend/pkg/events"
	"placement-portal-backend/pkg/logger"
	"placement-portal-backend/pkg/redis"
	"placement-portal-backend/pkg/security"
)

// @title           Placement Portal API
// @version         1.0
// @description     Student profiles, recruiter job postings and application tracking.
// @BasePath        /api
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting placement portal backend", "port", cfg.Port, "env", cfg.Environment)

	secLog := security.InitSecurityLogger("placement-portal", cfg.Environment)
	defer func() { _ = secLog.Sync() }()

	// 3. Setup Database
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	dbPool, err := database.NewPostgresConnection(startupCtx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RunMigrations {
		migrator, err := database.NewMigrator(cfg.DBUrl, migrations.FS)
		if err == nil {
			err = migrator.Up()
		}
		if err != nil {
			logger.Log.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Database schema up to date")
	}

	// 4. Optional infrastructure
	redisEnabled := false
	if cfg.RedisURL != "" {
		if err := redis.Initialize(startupCtx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limits", "error", err)
		} else {
			redisEnabled = true
			defer func() { _ = redis.Close() }()
		}
	}

	var publisher domain.EventPublisher = events.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		p, err := events.NewPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
		if err != nil {
			logger.Log.Warn("RabbitMQ unavailable, domain events disabled", "error", err)
		} else {
			publisher = p
			defer p.Close()
		}
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	recordRepo := postgres.NewStudentRecordRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	screeningRepo := postgres.NewScreeningRepository(dbPool)

	// 6. Setup UseCases
	loginTracker := security.NewLoginTracker(security.LoginTrackerConfig{
		MaxAttempts:   cfg.FailedLoginMaxAttempts,
		AttemptWindow: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		BlockDuration: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		UseIPTracking: true,
	}, secLog, redis.Client)

	authUC := usecase.NewAuthUsecase(userRepo, auth.NewIssuer(cfg.JWTSecret), loginTracker, publisher, secLog, usecase.AuthConfig{
		BcryptCost: cfg.BcryptCost,
		ResetTTL:   time.Duration(cfg.PasswordResetTTLMinutes) * time.Minute,
	})

	var redisPinger usecase.Pinger
	if redisEnabled {
		redisPinger = usecase.PingFunc(redis.HealthCheck)
	}

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:             authUC,
		ProfileUC:          usecase.NewProfileUsecase(profileRepo),
		StudentRecordUC:    usecase.NewStudentRecordUsecase(recordRepo),
		RecruiterProfileUC: usecase.NewRecruiterProfileUsecase(recruiterRepo),
		JobUC:              usecase.NewJobUsecase(jobRepo, recruiterRepo),
		ApplicationUC:      usecase.NewApplicationUsecase(applicationRepo, jobRepo, recruiterRepo, publisher),
		ScreeningUC:        usecase.NewScreeningUsecase(screeningRepo, applicationRepo, jobRepo, recruiterRepo, publisher),
		DirectoryUC:        usecase.NewStudentDirectoryUsecase(profileRepo, recordRepo),
		HealthUC:           usecase.NewHealthUsecase(postgres.NewPinger(dbPool), redisPinger),
		Redis:              redis.Client,
		Config:             cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
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
