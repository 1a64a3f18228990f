package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/config"
	"github.com/noah-isme/edumanage-api/internal/database"
	"github.com/noah-isme/edumanage-api/internal/handler"
	"github.com/noah-isme/edumanage-api/internal/middleware"
	"github.com/noah-isme/edumanage-api/internal/models"
	"github.com/noah-isme/edumanage-api/internal/repository"
	"github.com/noah-isme/edumanage-api/internal/router"
	"github.com/noah-isme/edumanage-api/internal/service"
	"github.com/noah-isme/edumanage-api/pkg/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", cfg.AppName).Logger()

	store, redisClient, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.StoreDriver, err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	natsConn, err := events.Connect(cfg.NATSURL)
	if err != nil {
		logger.Warn().Err(err).Msg("nats unavailable, domain events limited to redis")
	}
	publisher := events.New(events.Config{Subject: cfg.EventsSubject, Channel: cfg.EventsChannel}, natsConn, redisClient, logger)

	credentials, err := service.NewCredentialVerifier(cfg.CredentialScheme)
	if err != nil {
		log.Fatalf("failed to configure credentials: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(store, cfg.StoreKeyPrefix, logger)
	courseRepo := repository.NewCourseRepository(store, cfg.StoreKeyPrefix, logger)
	sessionRepo := repository.NewSessionRepository(store, cfg.StoreKeyPrefix, logger)

	seedService := service.NewSeedService(userRepo, courseRepo, credentials, cfg.SeedEnabled, logger)
	if _, err := seedService.SeedDefaults(context.Background()); err != nil && !errors.Is(err, service.ErrSeedDisabled) {
		log.Fatalf("failed to seed default data: %v", err)
	}

	identityService := service.NewIdentityService(userRepo, sessionRepo, credentials, validate, publisher, logger)
	catalogService := service.NewCatalogService(courseRepo, validate, publisher, logger)
	enrollmentService := service.NewEnrollmentService(courseRepo, publisher, logger)
	progressService := service.NewProgressService(courseRepo, validate, publisher, logger)
	dashboardService := service.NewDashboardService(courseRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: logger, AllowOrigins: cfg.CORSOrigins})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       handler.NewAuthHandler(identityService, middleware.RateLimit("login", cfg.AuthRateLimit, cfg.AuthRateWindow), logger),
		CourseHandler:     handler.NewCourseHandler(catalogService, enrollmentService, logger),
		LessonHandler:     handler.NewLessonHandler(progressService, logger),
		DashboardHandler:  handler.NewDashboardHandler(dashboardService, logger),
		SessionMiddleware: middleware.SessionContext(identityService, logger),
		StoreProbe: func(ctx context.Context) error {
			return repository.Ping(ctx, store, cfg.StoreKeyPrefix)
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app, natsConn)
}

// openStore returns the configured key-value backend. The redis client is
// also returned so events can fan out over pub/sub when it is available.
func openStore(cfg config.Config) (repository.KeyValueStore, *redis.Client, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres, config.StoreDriverSQLite:
		connect := database.ConnectPostgres
		dsn := cfg.DatabaseURL
		if cfg.StoreDriver == config.StoreDriverSQLite {
			connect = database.ConnectSQLite
			dsn = cfg.SQLitePath
		}

		db, err := connect(dsn)
		if err != nil {
			return nil, nil, err
		}
		if err := db.AutoMigrate(&models.KVRecord{}); err != nil {
			return nil, nil, err
		}
		return repository.NewGormStore(db), nil, nil
	default:
		client, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisStore(client), client, nil
	}
}

func waitForShutdown(app *fiber.App, natsConn *nats.Conn) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
	if natsConn != nil {
		if err := natsConn.Drain(); err != nil {
			log.Printf("nats drain failed: %v", err)
		}
	}

	log.Println("server stopped")
}
