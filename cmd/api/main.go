package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"agencycms/internal/auth"
	"agencycms/internal/config"
	"agencycms/internal/content"
	"agencycms/internal/database"
	"agencycms/internal/database/migration"
	handlers "agencycms/internal/http/handler"
	"agencycms/internal/http/middleware"
	"agencycms/internal/otel"
	"agencycms/internal/prefs"
	"agencycms/internal/repository/postgres"
	"agencycms/internal/service"
	"agencycms/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	ctx := context.Background()

	// Tracing: OTLP exporter, degrades to noop when disabled or unreachable
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// PostgreSQL connection (pooled via database/sql, traced via otelsql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Redis backs sessions and per-user preferences
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	sessionTTL := time.Duration(cfg.Auth.SessionTTLSec) * time.Second
	sessions := auth.NewSessionStoreWithClient(redisClient, sessionTTL)
	if err := sessions.Ping(ctx); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	// S3-compatible object storage for uploaded media
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Repositories
	sectionRepo := postgres.NewSectionPostgres(db)
	portfolioRepo := postgres.NewPortfolioPostgres(db)
	auditRepo := postgres.NewAuditPostgres(db)
	profileRepo := postgres.NewProfilePostgres(db)
	userRepo := postgres.NewUserPostgres(db)

	// Services
	contentSvc := service.NewContentService(sectionRepo, portfolioRepo, auditRepo)
	profileSvc := service.NewProfileService(profileRepo, auditRepo)
	mediaSvc := service.NewMediaService(objStore)
	authSvc := auth.NewService(userRepo, sessions, cfg.Auth.BcryptCost)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Global middleware: request ids, JSON request logs, request counters
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:      db,
		Content: contentSvc,
		Profile: profileSvc,
		Media:   mediaSvc,
		Auth:    authSvc,
		Signer:  authSvc,
		Drafts:  content.NewDraftStore(),
		Themes:  prefs.NewThemeStore(redisClient),
		Cookie: handlers.SessionCookie{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
			TTL:    sessionTTL,
		},
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
