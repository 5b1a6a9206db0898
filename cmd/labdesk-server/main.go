package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/haneenzahr1-lgtm/labdesk/internal/config"
	"github.com/haneenzahr1-lgtm/labdesk/internal/domain/billing"
	"github.com/haneenzahr1-lgtm/labdesk/internal/domain/order"
	"github.com/haneenzahr1-lgtm/labdesk/internal/domain/patient"
	"github.com/haneenzahr1-lgtm/labdesk/internal/platform/auth"
	"github.com/haneenzahr1-lgtm/labdesk/internal/platform/ident"
	"github.com/haneenzahr1-lgtm/labdesk/internal/platform/middleware"
	"github.com/haneenzahr1-lgtm/labdesk/internal/platform/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "labdesk-server",
		Short: "Clinical Lab Management API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the lab management API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample patient roster into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := context.Background()
			blob, cleanup, err := openBlob(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			st := store.New(blob, logger)
			svc := patient.NewService(patient.NewStoreRepo(st), ident.New())

			count, err := svc.Seed(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %d sample patients.\n", count)
			return nil
		},
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

// openBlob builds the configured blob backend. The returned cleanup
// releases any held connections and is safe to call once.
func openBlob(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (store.Blob, func(), error) {
	switch cfg.StoreBackend {
	case "file":
		blob, err := store.NewFileBlob(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return blob, func() {}, nil

	case "redis":
		blob, err := store.NewRedisBlobFromURL(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return blob, func() {
			if closer, ok := blob.(io.Closer); ok {
				closer.Close()
			}
		}, nil

	case "postgres":
		pool, err := store.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, nil, err
		}
		if err := store.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store.NewPGBlob(pool), func() { pool.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()
	blob, cleanup, err := openBlob(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store backend")
	}
	defer cleanup()
	logger.Info().Str("backend", cfg.StoreBackend).Msg("store ready")

	st := store.New(blob, logger)
	ids := ident.New()

	patientSvc := patient.NewService(patient.NewStoreRepo(st), ids)
	orderSvc := order.NewService(order.NewStoreRepo(st), ids)
	billingSvc := billing.NewService(billing.NewStoreRepo(st), orderSvc)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware
	if cfg.IsDev() {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware([]byte(cfg.AuthSecret)))
	}

	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	order.NewHandler(orderSvc).RegisterRoutes(apiV1)
	billing.NewHandler(billingSvc).RegisterRoutes(apiV1)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
