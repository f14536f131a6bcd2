package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"emerald-console/internal/adapter/apiclient"
	httpadapter "emerald-console/internal/adapter/http"
	"emerald-console/internal/adapter/memory"
	"emerald-console/internal/adapter/postgres"
	"emerald-console/internal/adapter/usecase"
	"emerald-console/internal/config"
	"emerald-console/internal/core/port"
	"emerald-console/internal/db"
	"emerald-console/internal/seed"
)

// main loads configuration, wires the marketplace API client, the activity
// log and the session store, then serves the console until SIGINT or
// SIGTERM and shuts down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var activity port.ActivityRepository = memory.NewActivityLog(memory.DefaultActivityCapacity)
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		activity = postgres.NewActivityRepository(pool)
	}

	apiOpts := []apiclient.Option{apiclient.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout})}
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		apiOpts = append(apiOpts, apiclient.WithMetrics(apiclient.NewMetrics(reg)))
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}
	api := apiclient.New(cfg.API.BaseURL.String(), apiOpts...)

	if cfg.Console.SeedDemo {
		if _, err = seed.Demo(ctx, api, logger); err != nil {
			logger.Warn("demo seeding failed", slog.Any("error", err))
		}
	}

	sessions := httpadapter.NewSessionStore(ctx, cfg.Console.SessionTTL, func(ctx context.Context) *usecase.Shell {
		return usecase.NewShell(ctx, api, usecase.ShellOptions{
			Logger:       logger,
			Activity:     activity,
			KeywordDelay: cfg.Console.KeywordDebounce,
		})
	})
	defer sessions.Close()

	handler := httpadapter.NewHandler(sessions, activity, logger, httpadapter.Options{
		CookieName:   cfg.Console.CookieName,
		CookieSecure: cfg.Console.CookieSecure,
		Metrics:      metricsHandler,
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("console listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("api", cfg.API.BaseURL.String()),
			slog.Bool("postgres", cfg.Psql.Enabled),
		)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
		}
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
