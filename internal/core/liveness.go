package core

// liveness.go probes row URLs with a single HEAD request each.
//
// Every failure mode (non-200 status, transport error, timeout) collapses
// into E06. There are no retries: one failed probe is final for that row.

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/JonMunkholm/culturize/internal/logging"
	"golang.org/x/sync/errgroup"
)

// DefaultProbeTimeout bounds a single probe.
const DefaultProbeTimeout = 2 * time.Second

// HTTPDoer sends HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// URLChecker runs liveness probes against row URLs.
type URLChecker struct {
	client    HTTPDoer
	timeout   time.Duration
	userAgent string
	limiter   *ProbeLimiter
}

// CheckerOption configures a URLChecker.
type CheckerOption func(*URLChecker)

// WithHTTPClient sets the client used for probes.
func WithHTTPClient(c HTTPDoer) CheckerOption {
	return func(uc *URLChecker) { uc.client = c }
}

// WithTimeout sets the per-probe deadline.
func WithTimeout(d time.Duration) CheckerOption {
	return func(uc *URLChecker) {
		if d > 0 {
			uc.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with probes.
func WithUserAgent(ua string) CheckerOption {
	return func(uc *URLChecker) { uc.userAgent = ua }
}

// WithMaxConcurrent bounds the number of probes in flight.
func WithMaxConcurrent(n int) CheckerOption {
	return func(uc *URLChecker) { uc.limiter = NewProbeLimiter(n) }
}

// NewURLChecker creates a checker with a 2 second probe timeout and
// DefaultMaxConcurrentProbes slots unless overridden.
func NewURLChecker(opts ...CheckerOption) *URLChecker {
	uc := &URLChecker{
		client:  http.DefaultClient,
		timeout: DefaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.limiter == nil {
		uc.limiter = NewProbeLimiter(DefaultMaxConcurrentProbes)
	}
	return uc
}

// Limiter returns the checker's concurrency limiter.
func (c *URLChecker) Limiter() *ProbeLimiter {
	return c.limiter
}

// Check probes row's URL and records the result on the row.
//
// Rows carrying E04 are never probed. Otherwise the row is marked checked
// before the request is sent; a 200 response marks it working, anything
// else raises E06. The only error returned is ctx's, when it ends before a
// probe slot is acquired; the row is then left unchecked.
func (c *URLChecker) Check(ctx context.Context, row *Row) error {
	if row.HasError(CodeInvalidURL) {
		return nil
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return err
	}
	defer c.limiter.Release()

	logging.FromContext(ctx).Debug("probe slot acquired",
		"row", row.Index,
		"active", c.limiter.ActiveCount(),
		"max_concurrent", c.limiter.MaxConcurrent())

	row.markChecked()
	row.setURLWorking(c.probe(ctx, row.URL))
	return nil
}

// probe sends one HEAD request and reports whether it answered 200.
func (c *URLChecker) probe(ctx context.Context, target string) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

// CheckAll probes every row that is neither a duplicate nor carries E04,
// one goroutine per row, bounded by the checker's limiter. It waits for all
// probes and returns how many were attempted. A non-nil error means ctx
// ended and some rows were left unchecked.
func (c *URLChecker) CheckAll(ctx context.Context, rows []*Row) (int, error) {
	g, gctx := errgroup.WithContext(ctx)

	for _, row := range rows {
		if row.IsDuplicate() || row.HasError(CodeInvalidURL) {
			continue
		}
		row := row
		g.Go(func() error {
			return c.Check(gctx, row)
		})
	}

	err := g.Wait()

	probed := 0
	for _, row := range rows {
		if row.URLChecked() {
			probed++
		}
	}
	return probed, err
}
