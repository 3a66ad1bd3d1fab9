package notesclient

import (
	"fmt"
	"os"
	"strings"
)

const (
	envMode   = "NOTES_CLIENT_MODE"
	envAPIURL = "NOTES_API_URL"

	modeAuto    = "auto"
	modeHTTP    = "http"
	modeOffline = "offline"
)

// NewFromEnv initialises a Client based on environment variables and
// returns the resolved mode ("http" or "offline"). Without an API URL
// the client falls back to the in-memory offline store.
func NewFromEnv() (client *Client, mode string, err error) {
	mode = strings.ToLower(strings.TrimSpace(os.Getenv(envMode)))
	baseURL := strings.TrimSpace(os.Getenv(envAPIURL))

	switch mode {
	case "", modeAuto:
		if baseURL != "" {
			return newHTTPClient(baseURL)
		}
		return newOfflineClient()
	case modeHTTP:
		if baseURL == "" {
			return nil, "", fmt.Errorf("notesclient: HTTP mode requires %s", envAPIURL)
		}
		return newHTTPClient(baseURL)
	case modeOffline:
		return newOfflineClient()
	default:
		return nil, "", fmt.Errorf("notesclient: unsupported %s value %q", envMode, mode)
	}
}

func newHTTPClient(baseURL string) (*Client, string, error) {
	client, err := New(baseURL)
	if err != nil {
		return nil, "", fmt.Errorf("notesclient: init HTTP client: %w", err)
	}
	return client, modeHTTP, nil
}

func newOfflineClient() (*Client, string, error) {
	return NewWithBackend(NewOfflineBackend()), modeOffline, nil
}
