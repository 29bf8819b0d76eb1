package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SignThenInspect(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-json", "-user", "7", "-email", "staff@test.com", "-rol", "COMPRADOR,ADMIN", "-exp", "30"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var signed struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &signed))
	require.NotEmpty(t, signed.Token)
	assert.Equal(t, 30*60, signed.ExpiresIn)

	stdout.Reset()
	code = run([]string{"-inspect", signed.Token}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Subject:  7")
	assert.Contains(t, stdout.String(), "Email:    staff@test.com")
	assert.Contains(t, stdout.String(), "Roles:    COMPRADOR,ADMIN")
	assert.Contains(t, stdout.String(), "Admin:    true")
}

func TestRun_TextOutput(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-user", "3"}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Mock Backend Token")
	assert.Contains(t, stdout.String(), "User ID:  3")
	assert.Contains(t, stdout.String(), "/eventos/1/publicar")
}

func TestRun_Failures_ExitOne(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"garbage token": {"-inspect", "not-a-jwt"},
		"zero expiry":   {"-exp", "0"},
		"unknown flag":  {"-nope"},
	}
	for name, args := range cases {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, run(args, &stdout, &stderr), name)
	}
}
