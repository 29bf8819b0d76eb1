package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/cudeca/eventos-seed/internal/client"
	"github.com/cudeca/eventos-seed/internal/fixtures"
	"github.com/cudeca/eventos-seed/internal/mockapi"
	"github.com/cudeca/eventos-seed/internal/testing/helpers"
	"github.com/cudeca/eventos-seed/internal/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeederFor(baseURL string, logs io.Writer) *Seeder {
	logger := helpers.NewLogger(logs)
	api := client.New(client.Config{
		BaseURL:    baseURL,
		HTTPClient: transport.NewHTTPClient(transport.Options{Timeout: 5 * time.Second, Logger: logger}),
	})
	return NewSeeder(SeederConfig{
		API:         api,
		Credentials: fixtures.Credentials(),
		Events:      fixtures.Events(),
		Logger:      logger,
	})
}

func TestSeeder_AgainstMockBackend_PublishesEveryEvent(t *testing.T) {
	t.Parallel()

	backend, baseURL := helpers.StartMockBackend(t, mockapi.Config{})

	report := newSeederFor(baseURL, io.Discard).Run(context.Background())

	assert.True(t, report.Registered)
	assert.True(t, report.LoggedIn)
	assert.Equal(t, 3, report.Published())

	events := backend.Store().Events()
	require.Len(t, events, 3)
	for i, want := range fixtures.Events() {
		assert.Equal(t, want.Title, events[i].Event.Title)
		assert.Equal(t, want.Target, events[i].Event.Target)
		assert.True(t, want.StartsAt.Equal(events[i].Event.StartsAt))
		assert.Equal(t, mockapi.StatusPublished, events[i].Status)
	}
}

func TestSeeder_AgainstMockBackend_ReportsUngrantedRole(t *testing.T) {
	t.Parallel()

	_, baseURL := helpers.StartMockBackend(t, mockapi.Config{})
	var logs bytes.Buffer

	report := newSeederFor(baseURL, &logs).Run(context.Background())

	assert.Equal(t, "COMPRADOR", report.Role)
	assert.Contains(t, logs.String(), "requested role was not granted")
}

func TestSeeder_AgainstMockBackend_AccessTokenField(t *testing.T) {
	t.Parallel()

	_, baseURL := helpers.StartMockBackend(t, mockapi.Config{TokenField: "access_token", AllowRoleRequest: true})

	report := newSeederFor(baseURL, io.Discard).Run(context.Background())

	assert.True(t, report.LoggedIn)
	assert.Equal(t, "COMPRADOR,ADMINISTRADOR", report.Role)
	assert.Equal(t, 3, report.Published())
}

func TestSeeder_AgainstMockBackend_SecondRunSkipsRegistration(t *testing.T) {
	t.Parallel()

	backend, baseURL := helpers.StartMockBackend(t, mockapi.Config{})
	seeder := newSeederFor(baseURL, io.Discard)

	first := seeder.Run(context.Background())
	second := seeder.Run(context.Background())

	assert.True(t, first.Registered)
	assert.False(t, second.Registered, "duplicate registration should be tolerated")
	assert.True(t, second.LoggedIn)
	assert.Len(t, backend.Store().Events(), 6, "events are not deduplicated")
}

func TestSeeder_AgainstMockBackend_ForbiddenCreation(t *testing.T) {
	t.Parallel()

	backend, baseURL := helpers.StartMockBackend(t, mockapi.Config{RequireAdmin: true})
	var logs bytes.Buffer

	report := newSeederFor(baseURL, &logs).Run(context.Background())

	assert.True(t, report.LoggedIn)
	assert.Zero(t, report.Created())
	require.Len(t, report.Events, 3)
	for _, r := range report.Events {
		assert.Equal(t, OutcomeCreateFailed, r.Outcome)
	}
	assert.Empty(t, backend.Store().Events())
	assert.Equal(t, 3, strings.Count(logs.String(), "event creation failed"))
}

func TestSeeder_AgainstFreshBackends_IsRepeatable(t *testing.T) {
	t.Parallel()

	firstBackend, firstURL := helpers.StartMockBackend(t, mockapi.Config{})
	secondBackend, secondURL := helpers.StartMockBackend(t, mockapi.Config{})

	first := newSeederFor(firstURL, io.Discard).Run(context.Background())
	second := newSeederFor(secondURL, io.Discard).Run(context.Background())

	require.Len(t, second.Events, len(first.Events))
	for i := range first.Events {
		assert.Equal(t, first.Events[i].ID, second.Events[i].ID)
		assert.Equal(t, first.Events[i].Outcome, second.Events[i].Outcome)
	}
	assert.Equal(t, len(firstBackend.Store().Events()), len(secondBackend.Store().Events()))
}

func TestSeeder_BackendDown_CompletesWithoutEvents(t *testing.T) {
	t.Parallel()

	report := newSeederFor(helpers.DownBackendURL(t), io.Discard).Run(context.Background())

	assert.False(t, report.Registered)
	assert.False(t, report.LoggedIn)
	assert.Empty(t, report.Events)
}
