// Package retry runs a single operation with bounded attempts and
// pure exponential backoff between them.
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxAttempts  = 3
	DefaultInitialDelay = time.Second
)

// Options controls one Do call. Zero values fall back to the defaults.
type Options struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Logger       *slog.Logger
	// Name is attached to retry log records, usually the URL being fetched.
	Name string
}

// ExhaustedError is returned when every attempt failed.
type ExhaustedError struct {
	Attempts int
	Cause    error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retries exhausted after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *ExhaustedError) Unwrap() error { return e.Cause }

func (o Options) normalized() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.InitialDelay <= 0 {
		o.InitialDelay = DefaultInitialDelay
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

func newBackOff(ctx context.Context, o Options) backoff.BackOff {
	exp := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(o.InitialDelay),
		backoff.WithRandomizationFactor(0),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(time.Duration(math.MaxInt64)),
		backoff.WithMaxElapsedTime(0),
	)
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(o.MaxAttempts-1)), ctx)
}

// Do calls op until it succeeds or MaxAttempts calls have failed. The final
// failure is returned as *ExhaustedError; it is never swallowed.
func Do[T any](ctx context.Context, opts Options, op func(ctx context.Context) (T, error)) (T, error) {
	o := opts.normalized()

	var (
		attempts int
		lastErr  error
	)
	operation := func() (T, error) {
		attempts++
		res, err := op(ctx)
		if err != nil {
			lastErr = err
		}
		return res, err
	}
	notify := func(err error, wait time.Duration) {
		o.Logger.Warn("attempt failed, retrying",
			"name", o.Name,
			"attempt", attempts,
			"max_attempts", o.MaxAttempts,
			"delay", wait,
			"err", err,
		)
	}

	res, err := backoff.RetryNotifyWithData(operation, newBackOff(ctx, o), notify)
	if err == nil {
		return res, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && lastErr != nil {
		var zero T
		return zero, fmt.Errorf("retry aborted after %d attempts (last error: %v): %w", attempts, lastErr, ctxErr)
	}
	var zero T
	return zero, &ExhaustedError{Attempts: attempts, Cause: err}
}
