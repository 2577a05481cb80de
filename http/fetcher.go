// Package http provides an HTTP-based implementation of pagetext.Fetcher
// for static pages that don't require JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pagetext"
)

// DefaultFetchTimeout is the default timeout for a single request attempt.
const DefaultFetchTimeout = 15 * time.Second

// Ensure Fetcher implements pagetext.Fetcher at compile time.
var _ pagetext.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bytes using HTTP GET requests.
// Responses with a retryable status are retried with backoff;
// every other failure is returned immediately.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	delays    []time.Duration
	userAgent string
	onRetry   RetryFunc
	limiter   *HostLimiter
}

// RetryFunc is called before each retry with the attempt about to be
// made and the error that caused it.
type RetryFunc func(url string, attempt int, err error)

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each request attempt.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRetryDelays sets the waits between attempts. The number of delays
// is the number of retries. Defaults to DefaultRetryDelays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRetryFunc registers a callback invoked before each retry.
func WithRetryFunc(fn RetryFunc) Option {
	return func(f *Fetcher) {
		f.onRetry = fn
	}
}

// WithRateLimit limits attempts to rps requests per second per host.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = NewHostLimiter(rps)
		} else {
			f.limiter = nil
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		delays:    DefaultRetryDelays(),
		userAgent: pagetext.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of url. Custom headers are applied after the
// default User-Agent, so a caller-supplied User-Agent wins.
// Errors are reported as EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	body, err := withRetry(ctx, url, f.delays, f.onRetry, func(ctx context.Context) ([]byte, error) {
		return f.fetchOnce(ctx, url, headers)
	})
	if err != nil {
		return nil, &pagetext.Error{
			Code:    pagetext.EUNAVAILABLE,
			Message: fmt.Sprintf("fetching %s: %v", url, err),
		}
	}
	return body, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, req.URL.Host); err != nil {
			return nil, err
		}
	}
	req.Header.Set("User-Agent", f.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	return io.ReadAll(resp.Body)
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
