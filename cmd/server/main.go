package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rioguia/rioguia-api/internal/api"
	"github.com/rioguia/rioguia-api/internal/cache"
	"github.com/rioguia/rioguia-api/internal/catalog"
	"github.com/rioguia/rioguia-api/internal/config"
	"github.com/rioguia/rioguia-api/internal/weather"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

// weatherStore is the store surface main wires up: the weather service needs
// Get/Set, the health endpoint needs Ping. Both backends satisfy it.
type weatherStore interface {
	weather.Store
	Ping(ctx context.Context) error
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	ctx := context.Background()

	// Build the immutable catalog; a bad dataset fails startup.
	cat, err := catalog.New()
	if err != nil {
		return fmt.Errorf("building attraction catalog: %w", err)
	}
	log.Info("catalog loaded", "attractions", cat.Len())

	// Pick the weather cache backend.
	var store weatherStore
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = client.Close() }()
		store = cache.NewRedisStore(client, cfg.WeatherTTL)
		log.Info("weather cache backend: redis")
	} else {
		store = cache.NewMemoryStore(cfg.WeatherTTL)
		log.Info("weather cache backend: in-process")
	}

	// Wire dependencies.
	sim := weather.NewSimulator(time.Now().UnixNano())
	weatherSvc := weather.NewService(store, sim, cfg.WeatherTTL, log)
	defer weatherSvc.Close()

	handlers := api.NewHandlers(cat, weatherSvc, log)
	router := api.NewRouter(handlers, cfg.AdminToken, store, cfg.RateLimitRPM, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}
