// Package http provides an HTTP-based implementation of geardocs.Fetcher
// for retrieving raw documentation payloads from remote sources.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/wzkariampuzha/geardocs"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the per-URL timeout. Documentation sources are
// large but stable, so the default is generous.
const DefaultFetchTimeout = 30 * time.Second

// DefaultConcurrency bounds the number of in-flight requests per FetchAll.
const DefaultConcurrency = 8

// Ensure Fetcher implements geardocs.Fetcher at compile time.
var _ geardocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves payloads over HTTP. URLs are fetched concurrently with
// per-URL timeouts and per-URL error isolation; one failing URL never
// prevents attempting the others. Failures are surfaced in the results
// rather than retried, so a broken source stays visible.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	concurrency int
	limiter     *hostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-URL timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithConcurrency bounds the number of URLs fetched in parallel.
func WithConcurrency(n int) Option {
	return func(f *Fetcher) {
		f.concurrency = n
	}
}

// WithHostRateLimit enforces a token-bucket limit of rps requests per
// second per host. No limit is applied when unset.
func WithHostRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = newHostLimiter(rps)
	}
}

// WithClient replaces the underlying HTTP client. The client should not set
// its own Timeout; per-request contexts govern deadlines.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{}
	}
	return f
}

// FetchAll retrieves every URL concurrently and returns one result per URL
// in input order, regardless of completion order.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) []geardocs.FetchResult {
	results := make([]geardocs.FetchResult, len(urls))

	g := new(errgroup.Group)
	g.SetLimit(f.concurrency)
	for i, u := range urls {
		g.Go(func() error {
			results[i] = f.fetchOne(ctx, u)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (f *Fetcher) fetchOne(ctx context.Context, rawURL string) geardocs.FetchResult {
	result := geardocs.FetchResult{URL: rawURL, FetchedAt: time.Now()}

	if f.limiter != nil {
		if u, err := url.Parse(rawURL); err == nil {
			if err := f.limiter.Wait(ctx, u.Host); err != nil {
				result.Err = geardocs.Errorf(geardocs.EFETCH, "fetching %s: %v", rawURL, err)
				return result
			}
		}
	}

	fctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fctx, http.MethodGet, rawURL, nil)
	if err != nil {
		result.Err = geardocs.Errorf(geardocs.EFETCH, "invalid URL %s: %v", rawURL, err)
		return result
	}

	resp, err := f.client.Do(req)
	if err != nil {
		result.Err = f.classify(rawURL, err)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result.Err = geardocs.Errorf(geardocs.EFETCH, "HTTP %d for %s", resp.StatusCode, rawURL)
		return result
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Err = f.classify(rawURL, err)
		return result
	}

	result.Body = body
	result.FetchedAt = time.Now()
	return result
}

// classify maps a transport error to the domain taxonomy: deadline
// expirations become typed timeout errors, everything else a fetch error.
func (f *Fetcher) classify(rawURL string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return geardocs.Errorf(geardocs.ETIMEOUT, "fetching %s timed out after %s", rawURL, f.timeout)
	}
	return geardocs.Errorf(geardocs.EFETCH, "fetching %s: %v", rawURL, trimURLError(err))
}

// trimURLError unwraps url.Error so messages don't repeat the URL.
func trimURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

// hostLimiter provides per-host rate limiting using token buckets. Each
// host gets its own limiter, so concurrent requests to different hosts
// proceed while requests within a host are spaced out.
type hostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

func newHostLimiter(rps float64) *hostLimiter {
	return &hostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the limit allows a request to the host, or the context
// is canceled.
func (l *hostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
