package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wzkariampuzha/geardocs"
	geardocshttp "github.com/wzkariampuzha/geardocs/http"
)

func TestFetcher_FetchAll(t *testing.T) {
	t.Parallel()

	t.Run("returns bodies in input order", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Delay the first path so completion order differs from
			// declaration order.
			if r.URL.Path == "/a" {
				time.Sleep(50 * time.Millisecond)
			}
			_, _ = w.Write([]byte("body:" + r.URL.Path))
		}))
		defer server.Close()

		fetcher := geardocshttp.NewFetcher()
		results := fetcher.FetchAll(context.Background(), []string{server.URL + "/a", server.URL + "/b"})

		require.Len(t, results, 2)
		require.NoError(t, results[0].Err)
		require.NoError(t, results[1].Err)
		assert.Equal(t, "body:/a", string(results[0].Body))
		assert.Equal(t, "body:/b", string(results[1].Body))
		assert.False(t, results[0].FetchedAt.IsZero())
	})

	t.Run("isolates failures per URL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/missing" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := geardocshttp.NewFetcher()
		results := fetcher.FetchAll(context.Background(), []string{
			server.URL + "/missing",
			server.URL + "/present",
		})

		require.Len(t, results, 2)
		require.Error(t, results[0].Err)
		assert.Equal(t, geardocs.EFETCH, geardocs.ErrorCode(results[0].Err))
		assert.Nil(t, results[0].Body)
		require.NoError(t, results[1].Err)
		assert.Equal(t, "ok", string(results[1].Body))
	})

	t.Run("returns a typed timeout error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer server.Close()

		fetcher := geardocshttp.NewFetcher(geardocshttp.WithTimeout(20 * time.Millisecond))
		results := fetcher.FetchAll(context.Background(), []string{server.URL})

		require.Len(t, results, 1)
		require.Error(t, results[0].Err)
		assert.Equal(t, geardocs.ETIMEOUT, geardocs.ErrorCode(results[0].Err))
	})

	t.Run("a timeout on one URL does not affect the others", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/slow" {
				time.Sleep(200 * time.Millisecond)
			}
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := geardocshttp.NewFetcher(geardocshttp.WithTimeout(50 * time.Millisecond))
		results := fetcher.FetchAll(context.Background(), []string{
			server.URL + "/slow",
			server.URL + "/fast",
		})

		assert.Equal(t, geardocs.ETIMEOUT, geardocs.ErrorCode(results[0].Err))
		require.NoError(t, results[1].Err)
		assert.Equal(t, "ok", string(results[1].Body))
	})

	t.Run("bounds in-flight requests", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := inFlight.Add(1)
			if p := peak.Load(); n > p {
				peak.Store(n)
			}
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := geardocshttp.NewFetcher(geardocshttp.WithConcurrency(2))
		urls := make([]string, 8)
		for i := range urls {
			urls[i] = server.URL
		}
		results := fetcher.FetchAll(context.Background(), urls)

		for _, res := range results {
			require.NoError(t, res.Err)
		}
		assert.LessOrEqual(t, peak.Load(), int64(2))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fetcher := geardocshttp.NewFetcher()
		results := fetcher.FetchAll(ctx, []string{server.URL})

		require.Len(t, results, 1)
		assert.Error(t, results[0].Err)
	})

	t.Run("returns error for unreachable host", func(t *testing.T) {
		t.Parallel()

		fetcher := geardocshttp.NewFetcher(geardocshttp.WithTimeout(200 * time.Millisecond))
		results := fetcher.FetchAll(context.Background(), []string{"http://unreachable-host.invalid/doc"})

		require.Len(t, results, 1)
		require.Error(t, results[0].Err)
		assert.Equal(t, geardocs.EFETCH, geardocs.ErrorCode(results[0].Err))
	})

	t.Run("spaces out requests to the same host when rate limited", func(t *testing.T) {
		t.Parallel()

		var count atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count.Add(1)
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := geardocshttp.NewFetcher(geardocshttp.WithHostRateLimit(20))
		start := time.Now()
		results := fetcher.FetchAll(context.Background(), []string{server.URL, server.URL, server.URL})

		for _, res := range results {
			require.NoError(t, res.Err)
		}
		// Three requests at 20 rps need at least ~100ms of spacing.
		assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
		assert.Equal(t, int64(3), count.Load())
	})

	t.Run("empty URL list yields empty results", func(t *testing.T) {
		t.Parallel()

		fetcher := geardocshttp.NewFetcher()
		assert.Empty(t, fetcher.FetchAll(context.Background(), nil))
	})
}
