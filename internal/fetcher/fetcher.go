package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "wikisum/1.0 (https://github.com/go-scripts/wikisum)"
	DefaultMaxSizeMB = 10
)

// Fetcher retrieves the raw HTML of a page
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// StatusError is returned when the server answers with anything but 200
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to get: %s (status %d)", e.URL, e.StatusCode)
}

// Options configures a fetcher
type Options struct {
	Timeout   time.Duration
	UserAgent string
	MaxSizeMB int
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.MaxSizeMB <= 0 {
		o.MaxSizeMB = DefaultMaxSizeMB
	}
	return o
}

// HTTPFetcher fetches pages with a plain HTTP client
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

// NewHTTPFetcher creates a new HTTPFetcher
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	opts = opts.withDefaults()
	return &HTTPFetcher{
		client:    &http.Client{Timeout: opts.Timeout},
		userAgent: opts.UserAgent,
		maxBytes:  int64(opts.MaxSizeMB) * 1024 * 1024,
	}
}

// Fetch issues a single GET. Non-200 responses are not retried.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	log.Debug("response received", "url", url, "status", resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return "", fmt.Errorf("page exceeds size limit of %d bytes", f.maxBytes)
	}

	log.Debug("page fetched", "url", url, "bytes", len(body))
	return string(body), nil
}
