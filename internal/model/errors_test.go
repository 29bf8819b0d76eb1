package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ============================================================================
// ProblemDetails Tests
// ============================================================================

func TestProblemDetails_Error_ReturnsFormattedMessage(t *testing.T) {
	t.Parallel()

	pd := &ProblemDetails{
		Status: http.StatusNotFound,
		Title:  "Not Found",
		Detail: "evento not found",
	}

	errMsg := pd.Error()

	if !strings.Contains(errMsg, "404") {
		t.Errorf("error message should contain status code, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "evento not found") {
		t.Errorf("error message should contain detail, got: %s", errMsg)
	}
}

func TestProblemDetails_WriteJSON_SetsContentTypeAndStatus(t *testing.T) {
	t.Parallel()

	pd := NewConflictError("email already registered")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected Content-Type 'application/problem+json', got %q", ct)
	}
	if rr.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, rr.Code)
	}

	var result ProblemDetails
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if result.Code != ErrCodeAlreadyExists {
		t.Errorf("expected code %d, got %d", ErrCodeAlreadyExists, result.Code)
	}
}

func TestNewLoginFailedError_ReturnsCorrectValues(t *testing.T) {
	t.Parallel()

	pd := NewLoginFailedError()

	if pd.Status != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, pd.Status)
	}
	if pd.Code != ErrCodeLoginFailed {
		t.Errorf("expected code %d, got %d", ErrCodeLoginFailed, pd.Code)
	}
	if !strings.Contains(pd.Type, "login-failed") {
		t.Errorf("expected type to contain 'login-failed', got %q", pd.Type)
	}
}

func TestNewInternalError_DefaultDetail(t *testing.T) {
	t.Parallel()

	pd := NewInternalError("")

	if pd.Detail == "" {
		t.Error("expected a default detail")
	}
}

// ============================================================================
// APIError Tests
// ============================================================================

func TestNewAPIError_DecodesProblemDetails(t *testing.T) {
	t.Parallel()

	body := []byte(`{"type":"x","title":"Conflict","status":409,"detail":"email already registered"}`)

	apiErr := NewAPIError("register", http.StatusConflict, "application/problem+json; charset=utf-8", body)

	if apiErr.Problem == nil {
		t.Fatal("expected problem details to be decoded")
	}
	if apiErr.Problem.Detail != "email already registered" {
		t.Errorf("unexpected detail %q", apiErr.Problem.Detail)
	}
	if !strings.Contains(apiErr.Error(), "email already registered") {
		t.Errorf("expected error to use problem detail, got %q", apiErr.Error())
	}
}

func TestNewAPIError_PlainBody(t *testing.T) {
	t.Parallel()

	apiErr := NewAPIError("create event", http.StatusBadRequest, "text/plain", []byte("fechaFin before fechaInicio\n"))

	if apiErr.Problem != nil {
		t.Error("expected no problem details for plain body")
	}
	if apiErr.Body != "fechaFin before fechaInicio" {
		t.Errorf("expected trimmed body, got %q", apiErr.Body)
	}
	if apiErr.Error() != "create event: status 400: fechaFin before fechaInicio" {
		t.Errorf("unexpected message %q", apiErr.Error())
	}
}

func TestNewAPIError_EmptyBody(t *testing.T) {
	t.Parallel()

	apiErr := NewAPIError("publish event", http.StatusForbidden, "", nil)

	if apiErr.Error() != "publish event: status 403" {
		t.Errorf("unexpected message %q", apiErr.Error())
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("seeding: %w", NewAPIError("login", http.StatusUnauthorized, "", nil))

	if got := StatusOf(wrapped); got != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", got)
	}
	if got := StatusOf(errors.New("dial tcp: connection refused")); got != 0 {
		t.Errorf("expected 0 for transport errors, got %d", got)
	}
}
