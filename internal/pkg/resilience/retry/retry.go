// Package retry wraps the retry-go package from Avast behind a small interface
// with functional options. It is used for polling operations that are expected
// to fail for a while, such as waiting for a freshly started node to accept
// RPC calls. Workflow calls against the node are never retried.
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds or the attempts run out.
type Retry interface {
	// Execute runs operation with the configured retry policy. It returns nil
	// once operation succeeds, or the last error when every attempt failed or
	// ctx is done.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts uint          // maximum number of attempts, including the first
	delay    time.Duration // base delay between attempts
	maxDelay time.Duration // cap on the exponential backoff
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements Retry using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates a Retry with the provided options applied over the defaults:
//
//   - attempts: 10
//   - delay:    200 milliseconds
//   - maxDelay: 2 seconds
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 10,
		delay:    200 * time.Millisecond,
		maxDelay: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

// Execute implements Retry with exponential backoff between attempts.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}
