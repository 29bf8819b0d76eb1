package helpers

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/cudeca/eventos-seed/internal/mockapi"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ============================================================================
// Logging Helpers
// ============================================================================

// DiscardLogger returns a logger that drops every record
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewLogger returns a debug-level text logger writing to w
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// ============================================================================
// Mock Backend Helpers
// ============================================================================

var ginTestMode sync.Once

// StartMockBackend serves a fresh mock backend over HTTP for the duration of
// the test and returns it with its base URL, /api included. A test secret
// and the cheapest bcrypt cost are filled in.
func StartMockBackend(t *testing.T, cfg mockapi.Config) (*mockapi.Server, string) {
	t.Helper()
	ginTestMode.Do(func() { gin.SetMode(gin.TestMode) })

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "helpers-test-secret"
	}
	cfg.BcryptCost = bcrypt.MinCost

	backend, err := mockapi.New(cfg, DiscardLogger())
	if err != nil {
		t.Fatalf("helpers: failed to create mock backend: %v", err)
	}
	t.Cleanup(backend.Close)

	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	return backend, srv.URL + "/api"
}

// DownBackendURL returns the base URL of a server that has already been shut
// down, so every request fails at the transport level
func DownBackendURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(nil)
	url := srv.URL + "/api"
	srv.Close()
	return url
}
