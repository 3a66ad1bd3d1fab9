package notesclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnvAutoWithURL(t *testing.T) {
	t.Setenv(envMode, "")
	t.Setenv(envAPIURL, "http://localhost:8080")

	client, mode, err := NewFromEnv()
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, modeHTTP, mode)
}

func TestNewFromEnvAutoWithoutURL(t *testing.T) {
	t.Setenv(envMode, "")
	t.Setenv(envAPIURL, "")

	client, mode, err := NewFromEnv()
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, modeOffline, mode)
}

func TestNewFromEnvHTTPRequiresURL(t *testing.T) {
	t.Setenv(envMode, "http")
	t.Setenv(envAPIURL, "")

	_, _, err := NewFromEnv()
	assert.Error(t, err)
}

func TestNewFromEnvOffline(t *testing.T) {
	t.Setenv(envMode, "offline")
	t.Setenv(envAPIURL, "http://localhost:8080")

	_, mode, err := NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, modeOffline, mode)
}

func TestNewFromEnvRejectsUnknownMode(t *testing.T) {
	t.Setenv(envMode, "bogus")

	_, _, err := NewFromEnv()
	assert.Error(t, err)
}
