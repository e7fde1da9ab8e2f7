package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"walletview/internal/components"
	"walletview/internal/config"
	"walletview/internal/database"
	"walletview/internal/handlers"
	"walletview/internal/middleware"
	"walletview/internal/repositories"
	"walletview/internal/services"
	"walletview/internal/validation"
	"walletview/web"
)

const seedCount = 40

func main() {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogger(cfg.Server.Environment)

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	repo := repositories.NewTransactionRepository(db.DB)

	if cfg.Database.Seed {
		seeder := services.NewSeederService(repo, uint64(time.Now().UnixNano()))
		if err := seeder.Seed(seedCount); err != nil {
			slog.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	renderer, err := components.NewRenderer()
	if err != nil {
		slog.Error("failed to initialize renderer", "error", err)
		os.Exit(1)
	}

	presenter := services.NewPresenterService(cfg.UI.CurrencySymbol)
	metrics := services.NewPrometheusMetrics()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.GetValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogging())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst).Middleware())

	e.StaticFS("/static", echo.MustSubFS(web.StaticFS, "static"))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", handlers.NewHealthCheckHandler(db.DB).HealthCheck)

	handlers.NewComponentHandler(repo, presenter, renderer, metrics, cfg.UI).RegisterRoutes(e)
	handlers.NewPreviewHandler(renderer, presenter, cfg.UI).RegisterRoutes(e)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("server starting", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}

func setupLogger(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}
