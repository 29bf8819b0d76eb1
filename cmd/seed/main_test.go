package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/cudeca/eventos-seed/internal/mockapi"
	"github.com/cudeca/eventos-seed/internal/testing/helpers"

	"github.com/stretchr/testify/assert"
)

func TestRun_List_PrintsFixturesWithoutRequests(t *testing.T) {
	t.Parallel()

	backend, url := helpers.StartMockBackend(t, mockapi.Config{AllowRoleRequest: true})
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-list", "-api-url", url}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Concierto Solidario de Primavera")
	assert.Contains(t, stdout.String(), "15000.00 EUR")
	assert.Contains(t, stdout.String(), "admin@test.com")
	assert.Empty(t, backend.Store().Events())
}

func TestRun_SeedsBackend(t *testing.T) {
	t.Parallel()

	backend, url := helpers.StartMockBackend(t, mockapi.Config{AllowRoleRequest: true})
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-api-url", url, "-rate", "100", "-v"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "3/3 created, 3 published")
	assert.Len(t, backend.Store().Events(), 3)
	assert.Contains(t, stderr.String(), "level=DEBUG")
}

func TestRun_BackendDown_StillExitsZero(t *testing.T) {
	t.Parallel()

	url := helpers.DownBackendURL(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-api-url", url, "-timeout", "2s"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "no events were submitted")
}

func TestRun_InvalidConfiguration_ExitsOne(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"bad url":        {"-api-url", "ftp://example.com"},
		"negative rate":  {"-rate", "-1"},
		"empty email":    {"-email", ""},
		"unknown flag":   {"-nope"},
		"malformed rate": {"-rate", "fast"},
	}
	for name, args := range cases {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), args, &stdout, &stderr)
		assert.Equal(t, 1, code, name)
	}
}
