package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mergington/activities-api/internal/config"
	"github.com/mergington/activities-api/internal/database"
	"github.com/mergington/activities-api/internal/handler"
	"github.com/mergington/activities-api/internal/middleware"
	"github.com/mergington/activities-api/internal/models"
	"github.com/mergington/activities-api/internal/repository"
	"github.com/mergington/activities-api/internal/router"
	"github.com/mergington/activities-api/internal/seed"
	"github.com/mergington/activities-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	activityRepo, teacherRepo, backend := selectBackend(cfg, logger)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, day-list caching disabled")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	if err := seed.Apply(context.Background(), activityRepo, teacherRepo, logger); err != nil {
		log.Fatalf("failed to seed storage: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	activityService := service.NewActivityService(activityRepo, redisClient, cfg.DaysCacheTTL, logger)
	enrollmentService := service.NewEnrollmentService(activityRepo, teacherRepo, logger)
	authService := service.NewAuthService(teacherRepo, logger)

	activityHandler := handler.NewActivityHandler(activityService, enrollmentService, validate, logger)
	authHandler := handler.NewAuthHandler(authService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ActivityHandler: activityHandler,
		AuthHandler:     authHandler,
		Backend:         backend,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// selectBackend picks the storage backend exactly once: the database when it
// is configured and reachable, the in-memory store otherwise. The choice is
// never re-evaluated per request.
func selectBackend(cfg config.Config, logger zerolog.Logger) (repository.ActivityRepository, repository.TeacherRepository, string) {
	if cfg.DatabaseURL != "" {
		db, err := database.ConnectPostgres(cfg.DatabaseURL)
		if err == nil {
			if err := db.AutoMigrate(&models.Activity{}, &models.Teacher{}); err != nil {
				log.Fatalf("failed to migrate database: %v", err)
			}
			return repository.NewActivityRepository(db), repository.NewTeacherRepository(db), "postgres"
		}
		logger.Warn().Err(err).Msg("database unavailable, falling back to in-memory storage")
	} else {
		logger.Warn().Msg("no database configured, using in-memory storage")
	}

	return repository.NewMemoryActivityRepository(), repository.NewMemoryTeacherRepository(), "memory"
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
