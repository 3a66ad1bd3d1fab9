package notesclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Option configures the HTTP backend.
type Option func(*httpBackend)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(h *http.Client) Option {
	return func(b *httpBackend) {
		if h != nil {
			b.httpClient = h
		}
	}
}

// WithHeaders assigns default headers added to every request.
func WithHeaders(h http.Header) Option {
	return func(b *httpBackend) {
		for k, values := range h {
			for _, v := range values {
				b.headers.Add(k, v)
			}
		}
	}
}

type httpBackend struct {
	baseURL    *url.URL
	httpClient *http.Client
	headers    http.Header
}

func newHTTPBackend(baseURL string, opts ...Option) (*httpBackend, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("notesclient: base URL is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("notesclient: parse base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("notesclient: base URL must be absolute")
	}
	b := &httpBackend{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		headers:    http.Header{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func (b *httpBackend) List(ctx context.Context) ([]Note, error) {
	notes := []Note{}
	if err := b.do(ctx, http.MethodGet, "notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (b *httpBackend) Get(ctx context.Context, id string) (*Note, error) {
	note := Note{}
	if err := b.do(ctx, http.MethodGet, "notes/"+url.PathEscape(id), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (b *httpBackend) Create(ctx context.Context, input CreateInput) (*Note, error) {
	note := Note{}
	if err := b.do(ctx, http.MethodPost, "notes", input, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (b *httpBackend) Update(ctx context.Context, id string, input UpdateInput) (*Note, error) {
	note := Note{}
	if err := b.do(ctx, http.MethodPut, "notes/"+url.PathEscape(id), input, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (b *httpBackend) Delete(ctx context.Context, id string) error {
	return b.do(ctx, http.MethodDelete, "notes/"+url.PathEscape(id), nil, nil)
}

// do performs a single round trip. No retries: a failed call is
// reported to the caller as-is.
func (b *httpBackend) do(ctx context.Context, method, path string, body, out any) error {
	endpoint := b.baseURL.JoinPath(path).String()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("notesclient: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("notesclient: build request: %w", err)
	}
	for k, values := range b.headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notesclient: %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("notesclient: read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return apiError(resp.StatusCode, data)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("notesclient: decode response: %w", err)
	}
	return nil
}

func apiError(status int, data []byte) error {
	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(data, &envelope)
	message := envelope.Error
	if message == "" {
		message = http.StatusText(status)
	}
	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, message)
	default:
		return fmt.Errorf("notesclient: server error (status %d): %s", status, message)
	}
}
