// Package httpsource serves summary documents from a base URL.
package httpsource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driven"
	"github.com/verslag-digest/digest/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// DefaultTimeout bounds a single request when none is configured.
const DefaultTimeout = 10 * time.Second

// Options configures a Fetcher.
type Options struct {
	// Timeout bounds a single request.
	Timeout time.Duration

	// RequestsPerSecond limits the sustained request rate. Zero is unlimited.
	RequestsPerSecond float64

	// RetryCount is the number of retries for transient failures.
	RetryCount int

	// HTTPClient overrides the underlying client, e.g. for tests.
	HTTPClient *http.Client
}

// Fetcher reads resources relative to a base URL.
type Fetcher struct {
	baseURL string
	client  *resty.Client
	limiter *RateLimiter
}

// NewFetcher creates a fetcher for baseURL.
func NewFetcher(baseURL string, opts Options) (*Fetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q", domain.ErrInvalidInput, baseURL)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	base := strings.TrimRight(baseURL, "/") + "/"
	client := resty.New()
	if opts.HTTPClient != nil {
		client = resty.NewWithClient(opts.HTTPClient)
	}
	client.
		SetBaseURL(base).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(retryCondition)

	return &Fetcher{
		baseURL: base,
		client:  client,
		limiter: NewRateLimiter(opts.RequestsPerSecond, 1),
	}, nil
}

// Fetch GETs the named resource.
func (f *Fetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := f.client.R().SetContext(ctx).Get(escapePath(name))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("get %s: %w: %w", name, domain.ErrResourceUnavailable, err)
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		f.limiter.Backoff(retryAfter(resp.Header().Get("Retry-After")))
	}
	if resp.IsError() {
		logger.Debug("GET %s%s: %s", f.baseURL, name, resp.Status())
		return nil, fmt.Errorf("get %s: status %d: %w", name, resp.StatusCode(), domain.ErrResourceUnavailable)
	}
	return resp.Body(), nil
}

// Location returns the base URL.
func (f *Fetcher) Location() string {
	return f.baseURL
}

// retryCondition retries transient server-side failures.
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == http.StatusTooManyRequests || code == http.StatusRequestTimeout
}

// escapePath escapes each segment of a slash-separated resource name.
func escapePath(name string) string {
	segments := strings.Split(strings.TrimLeft(name, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// retryAfter parses a Retry-After header given in seconds.
func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
