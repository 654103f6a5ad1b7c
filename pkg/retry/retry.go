package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Do runs op with a fixed delay between tries, at most attempts times in total.
// It returns nil as soon as op succeeds, and the last failure once the attempt
// budget is spent or ctx is done. Used for the initial handshake with external
// services, which is the only place anything is retried automatically.
func Do(ctx context.Context, attempts uint64, delay time.Duration, op func() error) error {
	if attempts == 0 {
		attempts = 1
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(delay), attempts-1), ctx)
	return backoff.Retry(op, policy)
}
