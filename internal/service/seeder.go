package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/cudeca/eventos-seed/internal/model"
	"github.com/cudeca/eventos-seed/pkg/jwt"
)

// API is the subset of the backend the seeder drives. *client.Client
// satisfies it.
type API interface {
	Register(ctx context.Context, creds model.Credentials) error
	Login(ctx context.Context, req model.LoginRequest) (string, model.LoginResponse, error)
	CreateEvent(ctx context.Context, token string, event model.Event) (*model.CreatedEvent, error)
	PublishEvent(ctx context.Context, token, id string) error
}

// Inspector decodes the claims of a session token
type Inspector func(token string) (*jwt.Claims, error)

// Outcome is the final state of one event in a seeding run
type Outcome string

const (
	OutcomePublished        Outcome = "published"
	OutcomePublishFailed    Outcome = "publish_failed"
	OutcomeCreatedWithoutID Outcome = "created_without_id"
	OutcomeCreateFailed     Outcome = "create_failed"
)

// EventResult records what happened to one event
type EventResult struct {
	Title   string
	ID      string
	Outcome Outcome
	Err     error
}

// Created reports whether the backend accepted the event
func (r EventResult) Created() bool {
	return r.Outcome != OutcomeCreateFailed
}

// Report summarises a seeding run
type Report struct {
	Registered bool
	LoggedIn   bool
	// Role lists the roles the backend granted, comma separated. Empty when
	// neither the token nor the login response carried any.
	Role     string
	Events   []EventResult
	Duration time.Duration
}

// Created counts the events the backend accepted
func (r Report) Created() int {
	n := 0
	for _, e := range r.Events {
		if e.Created() {
			n++
		}
	}
	return n
}

// Published counts the events that reached the published state
func (r Report) Published() int {
	n := 0
	for _, e := range r.Events {
		if e.Outcome == OutcomePublished {
			n++
		}
	}
	return n
}

// SeederConfig holds seeder dependencies
type SeederConfig struct {
	API         API
	Credentials model.Credentials
	Events      []model.Event
	// Inspector defaults to jwt.Inspect
	Inspector Inspector
	Logger    *slog.Logger
}

// Seeder registers a fixed account, logs in and creates then publishes a
// fixed list of events. Every step is best effort: failures are logged and
// the run carries on.
type Seeder struct {
	api     API
	creds   model.Credentials
	events  []model.Event
	inspect Inspector
	logger  *slog.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(cfg SeederConfig) *Seeder {
	inspect := cfg.Inspector
	if inspect == nil {
		inspect = jwt.Inspect
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		api:     cfg.API,
		creds:   cfg.Credentials,
		events:  cfg.Events,
		inspect: inspect,
		logger:  logger,
	}
}

// session is the outcome of the auth step
type session struct {
	registered bool
	token      string
	roles      []string
}

// RegisterAndLogin registers the account, ignoring any failure, then logs in.
// It returns the session token, or "" when login did not yield one.
func (s *Seeder) RegisterAndLogin(ctx context.Context) string {
	return s.authenticate(ctx).token
}

func (s *Seeder) authenticate(ctx context.Context) session {
	var sess session

	s.logger.Info("registering user", "email", s.creds.Email, "role", s.creds.Role)
	if err := s.api.Register(ctx, s.creds); err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) {
			s.logger.Warn("registration rejected, continuing with login",
				"status", apiErr.Status,
				"body", apiErr.Body,
			)
		} else {
			s.logger.Warn("registration failed, continuing with login", "error", err)
		}
	} else {
		sess.registered = true
		s.logger.Info("user registered", "email", s.creds.Email)
	}

	token, resp, err := s.api.Login(ctx, s.creds.Login())
	if err != nil {
		s.logger.Error("login failed",
			"email", s.creds.Email,
			"status", model.StatusOf(err),
			"error", err,
		)
		return sess
	}
	sess.token = token
	sess.roles = s.grantedRoles(token, resp)
	s.logger.Info("logged in", "email", s.creds.Email, "roles", strings.Join(sess.roles, ","))
	return sess
}

// grantedRoles reports the roles carried by the token claims, falling back to
// the user summary of the login response. It warns when the requested role
// was not granted.
func (s *Seeder) grantedRoles(token string, resp model.LoginResponse) []string {
	var granted jwt.Claims

	claims, err := s.inspect(token)
	switch {
	case err != nil:
		s.logger.Debug("token is not an inspectable JWT", "error", err)
	default:
		granted = *claims
		s.logger.Debug("token claims",
			"subject", claims.Subject,
			"email", claims.Email,
			"expires_in", claims.ExpiresIn(time.Now()).Round(time.Second),
		)
	}
	if len(granted.RoleNames()) == 0 {
		granted.Roles = resp.User().RoleNames()
	}

	roles := granted.RoleNames()
	if s.creds.Role != "" && len(roles) > 0 && !granted.HasRole(s.creds.Role) {
		s.logger.Warn("requested role was not granted",
			"requested", s.creds.Role,
			"granted", strings.Join(roles, ","),
		)
	}
	return roles
}

// CreateEvents creates every configured event in order and publishes those
// the backend returned an id for. With an empty token no request is issued
// and nil is returned.
func (s *Seeder) CreateEvents(ctx context.Context, token string) []EventResult {
	if token == "" {
		s.logger.Error("no session token, skipping event creation")
		return nil
	}

	results := make([]EventResult, 0, len(s.events))
	for i, event := range s.events {
		if err := ctx.Err(); err != nil {
			s.logger.Warn("seeding interrupted", "remaining", len(s.events)-i, "error", err)
			for _, rest := range s.events[i:] {
				results = append(results, EventResult{Title: rest.Title, Outcome: OutcomeCreateFailed, Err: err})
			}
			break
		}
		results = append(results, s.seedEvent(ctx, token, event))
	}
	return results
}

func (s *Seeder) seedEvent(ctx context.Context, token string, event model.Event) EventResult {
	result := EventResult{Title: event.Title}
	logger := s.logger.With("event", event.Title)

	created, err := s.api.CreateEvent(ctx, token, event)
	if errors.Is(err, model.ErrMalformedResponse) {
		result.Outcome = OutcomeCreatedWithoutID
		result.Err = err
		logger.Warn("event accepted with unreadable response, skipping publish", "error", err)
		return result
	}
	if err != nil {
		result.Outcome = OutcomeCreateFailed
		result.Err = err
		logger.Error("event creation failed", "status", model.StatusOf(err), "error", err)
		return result
	}

	result.ID = created.ID()
	if result.ID == "" {
		result.Outcome = OutcomeCreatedWithoutID
		result.Err = model.ErrMissingEventID
		logger.Warn("event created without id, skipping publish")
		return result
	}
	logger.Info("event created", "id", result.ID)

	if err := s.api.PublishEvent(ctx, token, result.ID); err != nil {
		result.Outcome = OutcomePublishFailed
		result.Err = err
		logger.Error("event publish failed", "id", result.ID, "status", model.StatusOf(err), "error", err)
		return result
	}
	result.Outcome = OutcomePublished
	logger.Info("event published", "id", result.ID)
	return result
}

// Run performs the auth step followed by the creation step
func (s *Seeder) Run(ctx context.Context) Report {
	start := time.Now()

	sess := s.authenticate(ctx)
	report := Report{
		Registered: sess.registered,
		LoggedIn:   sess.token != "",
		Role:       strings.Join(sess.roles, ","),
		Events:     s.CreateEvents(ctx, sess.token),
	}
	report.Duration = time.Since(start)

	s.logger.Info("seeding finished",
		"logged_in", report.LoggedIn,
		"created", report.Created(),
		"published", report.Published(),
		"total", len(s.events),
		"duration", report.Duration.Round(time.Millisecond),
	)
	return report
}
