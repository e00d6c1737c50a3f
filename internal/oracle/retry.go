package oracle

import (
	"context"
	"fmt"
	"time"
)

// BackoffFunc returns the delay to sleep before retrying after the given
// 1-based attempt number.
type BackoffFunc func(attempt int) time.Duration

// ScaledBackoff returns a backoff of base multiplied by the attempt number,
// so consecutive waits grow: base, 2*base, 3*base, ...
func ScaledBackoff(base time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return base * time.Duration(attempt)
	}
}

// Retry invokes fn up to maxAttempts times, sleeping backoff(attempt) between
// failures. The final error is returned once attempts are exhausted; context
// cancellation aborts both the call chain and any pending sleep.
func Retry[T any](ctx context.Context, maxAttempts int, backoff BackoffFunc, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == maxAttempts {
			break
		}
		if err := sleep(ctx, backoff(attempt)); err != nil {
			return zero, err
		}
	}

	return zero, fmt.Errorf("all %d attempts failed: %w", maxAttempts, lastErr)
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
