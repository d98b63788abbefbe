package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock article server for fetcher tests
func setupMockServer(t *testing.T, statusCode int, body string, delay time.Duration) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Errorf("Expected a User-Agent header")
		}

		if delay > 0 {
			time.Sleep(delay)
		}

		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		w.WriteHeader(statusCode)
		w.Write([]byte(body))
	}))

	t.Cleanup(func() {
		server.Close()
	})

	return server
}

func TestHTTPFetcherOK(t *testing.T) {
	server := setupMockServer(t, http.StatusOK, "<html><body>ok</body></html>", 0)

	f := NewHTTPFetcher(Options{})
	page, err := f.Fetch(context.Background(), server.URL+"/wiki/Graph_theory")
	require.NoError(t, err)
	assert.Equal(t, "<html><body>ok</body></html>", page)
}

func TestHTTPFetcherStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"no content", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := setupMockServer(t, tt.status, "", 0)
			endpoint := server.URL + "/wiki/Missing_page"

			_, err := NewHTTPFetcher(Options{}).Fetch(context.Background(), endpoint)
			require.Error(t, err)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, endpoint, statusErr.URL)
			assert.Contains(t, err.Error(), "failed to get: "+endpoint)
		})
	}
}

func TestHTTPFetcherUserAgent(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	_, err := NewHTTPFetcher(Options{UserAgent: "tester/2.0"}).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "tester/2.0", got)
}

func TestHTTPFetcherTimeout(t *testing.T) {
	server := setupMockServer(t, http.StatusOK, "slow", 200*time.Millisecond)

	f := NewHTTPFetcher(Options{Timeout: 20 * time.Millisecond})
	_, err := f.Fetch(context.Background(), server.URL)
	assert.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestHTTPFetcherCanceled(t *testing.T) {
	server := setupMockServer(t, http.StatusOK, "ok", 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPFetcher(Options{}).Fetch(ctx, server.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPFetcherSizeLimit(t *testing.T) {
	server := setupMockServer(t, http.StatusOK, strings.Repeat("x", 1024*1024+1), 0)

	_, err := NewHTTPFetcher(Options{MaxSizeMB: 1}).Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size limit")
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	assert.Equal(t, DefaultTimeout, opts.Timeout)
	assert.Equal(t, DefaultUserAgent, opts.UserAgent)
	assert.Equal(t, DefaultMaxSizeMB, opts.MaxSizeMB)

	opts = Options{Timeout: time.Second, UserAgent: "x", MaxSizeMB: 2}.withDefaults()
	assert.Equal(t, time.Second, opts.Timeout)
	assert.Equal(t, "x", opts.UserAgent)
	assert.Equal(t, 2, opts.MaxSizeMB)
}

func TestFetchersImplementInterface(t *testing.T) {
	var _ Fetcher = NewHTTPFetcher(Options{})
	var _ Fetcher = NewBrowserFetcher(Options{})
}
