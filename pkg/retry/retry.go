// Package retry repeats transient store and network calls with exponential backoff.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const initialInterval = 100 * time.Millisecond

// Do calls fn until it succeeds or maxElapsed has passed since the first attempt.
// Context errors and errors wrapped with Permanent are returned immediately.
func Do(ctx context.Context, logger *zap.Logger, operation string, maxElapsed time.Duration, fn func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = initialInterval
	policy.MaxElapsedTime = maxElapsed

	return backoff.RetryNotify(func() error {
		err := fn()
		if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(policy, ctx), func(err error, wait time.Duration) {
		logger.Warn("call failed, retrying",
			zap.String("operation", operation),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	})
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
