package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/guestbook-service/internal/api/http"
	"github.com/spec-kit/guestbook-service/internal/api/http/handlers"
	"github.com/spec-kit/guestbook-service/internal/config"
	"github.com/spec-kit/guestbook-service/internal/observability"
	"github.com/spec-kit/guestbook-service/internal/persistence"
	"github.com/spec-kit/guestbook-service/internal/repository"
	"github.com/spec-kit/guestbook-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	// Schema init is best-effort unless DB_SCHEMA_INIT_FATAL is set.
	if err := persistence.EnsureSchema(ctx, pg.PoolHandle(), logger); err != nil {
		if cfg.Postgres.SchemaInitFatal {
			logger.Fatal("failed to init schema", zap.Error(err))
		}
		logger.Error("failed to init schema; continuing", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(pg.PoolHandle())
	userService := service.NewUserService(userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics)

	app.Static("/", "./web")

	healthHandler := handlers.NewHealthHandler(cfg.App.Version, pg)
	usersHandler := handlers.NewUsersHandler(userService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: healthHandler,
		Users:  usersHandler,
	})

	if cfg.Metrics.Addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				logger.Error("metrics listener", zap.Error(err))
			}
		}()
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.App.Addr()),
			zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	// Stop accepting connections before the deferred pool close so
	// in-flight queries finish cleanly.
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
