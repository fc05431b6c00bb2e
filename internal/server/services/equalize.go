package services

import (
	"context"
	"time"
)

// DefaultAuthFloor is the minimum duration of a sign-in challenge.
const DefaultAuthFloor = 750 * time.Millisecond

// Equalize runs fn and then waits until at least floor has passed since it
// started, whether fn succeeded or not. The wait ends early only if ctx is
// done; fn's result is returned either way.
func Equalize[T any](ctx context.Context, floor time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	start := time.Now()
	v, err := fn(ctx)

	if rest := floor - time.Since(start); rest > 0 {
		t := time.NewTimer(rest)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
		}
	}
	return v, err
}
