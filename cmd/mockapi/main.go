// Package main runs the in-memory mock events backend.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cudeca/eventos-seed/internal/config"
	"github.com/cudeca/eventos-seed/internal/mockapi"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := cfg.ValidateMockAPI(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if _, err := cfg.Log.SlogLevel(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)
	gin.SetMode(gin.ReleaseMode)

	backend, err := mockapi.New(mockapi.Config{
		JWTSecret:        cfg.MockAPI.JWTSecret,
		TokenTTL:         cfg.MockAPI.TokenTTL,
		TokenField:       cfg.MockAPI.TokenField,
		AllowRoleRequest: cfg.MockAPI.AllowRoleRequest,
		RequireAdmin:     cfg.MockAPI.RequireAdmin,
		RateLimit:        cfg.MockAPI.RateLimit,
		RateBurst:        cfg.MockAPI.RateBurst,
	}, logger)
	if err != nil {
		slog.Error("failed to create mock backend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer backend.Close()

	server := &http.Server{
		Addr:         ":" + cfg.MockAPI.Port,
		Handler:      backend.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting mock backend",
			slog.String("port", cfg.MockAPI.Port),
			slog.String("token_field", cfg.MockAPI.TokenField),
			slog.Bool("allow_role_request", cfg.MockAPI.AllowRoleRequest),
			slog.Bool("require_admin", cfg.MockAPI.RequireAdmin),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down mock backend...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("mock backend exited", slog.Int("events", len(backend.Store().Events())))
}
