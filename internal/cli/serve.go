// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"suggestpress/internal/cache"
	"suggestpress/internal/config"
	"suggestpress/internal/handlers"
	"suggestpress/internal/markdown"
	"suggestpress/internal/middleware"
	"suggestpress/internal/render"
	"suggestpress/internal/router"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web composer",
		Long: `Start the HTTP server hosting the compose form, the live preview and
the JSON conversion API. Settings come from APP_* and VALKEY_* environment
variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			slog.SetDefault(newLogger(cfg))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

// newLogger outputs text at debug level in development and JSON otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsDev() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// serve runs the server until ctx is cancelled, then drains connections.
func serve(ctx context.Context, cfg *config.Config) error {
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	handler, cleanup, err := buildHandler(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// buildHandler wires every dependency of the web surface. The returned
// cleanup releases the rate limiter and the Valkey connection.
func buildHandler(cfg *config.Config) (http.Handler, func(), error) {
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	var valkeyClient *redis.Client
	if cfg.UseValkey() {
		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			limiter.Stop()
			return nil, nil, fmt.Errorf("connect to valkey: %w", err)
		}
		valkeyClient = client
		limiter.WithCounter(cache.NewWindowCounter(client))
		slog.Info("rate limiting shared through valkey", "host", cfg.ValkeyHost)
	} else {
		slog.Warn("valkey not configured, rate limiting per process")
	}

	cleanup := func() {
		limiter.Stop()
		if valkeyClient != nil {
			valkeyClient.Close()
		}
	}

	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("initialize template renderer: %w", err)
	}

	help, err := markdown.Help()
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("render help: %w", err)
	}

	composer := handlers.NewComposer(renderer, help, cfg.MaxBodyBytes)
	api := handlers.NewAPI(cfg.MaxBodyBytes)

	// In non-development environments the CSRF cookie is HTTPS-only.
	return router.New(composer, api, limiter, cfg.MaxBodyBytes, !cfg.IsDev()), cleanup, nil
}
