package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cudeca/eventos-seed/internal/model"
)

// Config holds API client settings
type Config struct {
	// BaseURL is the backend root including the /api prefix
	BaseURL    string
	HTTPClient *http.Client
}

// Client talks to the events backend REST API
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a new API client
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
	}
}

// BaseURL returns the backend root the client targets
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Register submits the account to /auth/register. Both 200 and 201 count as
// success.
func (c *Client) Register(ctx context.Context, creds model.Credentials) error {
	_, err := c.do(ctx, "register", http.MethodPost, "/auth/register", "", creds, http.StatusOK, http.StatusCreated)
	return err
}

// Login exchanges credentials for a session token. Only 200 counts as
// success; a 200 without a token returns model.ErrMissingToken along with
// the decoded response.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (string, model.LoginResponse, error) {
	body, err := c.do(ctx, "login", http.MethodPost, "/auth/login", "", req, http.StatusOK)
	if err != nil {
		return "", nil, err
	}

	var resp model.LoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", nil, fmt.Errorf("login: %w: %v", model.ErrMalformedResponse, err)
	}

	token := resp.Token()
	if token == "" {
		return "", resp, fmt.Errorf("login: %w", model.ErrMissingToken)
	}
	return token, resp, nil
}

// CreateEvent submits an event to POST /eventos
func (c *Client) CreateEvent(ctx context.Context, token string, event model.Event) (*model.CreatedEvent, error) {
	if token == "" {
		return nil, fmt.Errorf("create event: %w", model.ErrNotAuthenticated)
	}

	body, err := c.do(ctx, "create event", http.MethodPost, "/eventos", token, event, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var created model.CreatedEvent
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("create event: %w: %v", model.ErrMalformedResponse, err)
	}
	return &created, nil
}

// PublishEvent moves a created event to its published state
func (c *Client) PublishEvent(ctx context.Context, token, id string) error {
	if token == "" {
		return fmt.Errorf("publish event: %w", model.ErrNotAuthenticated)
	}
	if id == "" {
		return fmt.Errorf("publish event: %w", model.ErrMissingEventID)
	}

	path := "/eventos/" + url.PathEscape(id) + "/publicar"
	_, err := c.do(ctx, "publish event", http.MethodPatch, path, token, nil, http.StatusOK)
	return err
}

// do sends one request and returns the response body when the status is one
// of accept; any other status is returned as *model.APIError.
func (c *Client) do(ctx context.Context, op, method, path, token string, payload any, accept ...int) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal body: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}

	for _, status := range accept {
		if resp.StatusCode == status {
			return body, nil
		}
	}
	return nil, model.NewAPIError(op, resp.StatusCode, resp.Header.Get("Content-Type"), body)
}
