package registry

import (
	"context"
	"time"
)

// DelayPolicy models the pacing pauses applied around review and reveal.
// Injecting the policy keeps them out of the core logic's control flow and
// lets tests run synchronously.
type DelayPolicy func(ctx context.Context, d time.Duration) error

// Sleep waits for d or until ctx is cancelled.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoDelay skips the pause entirely.
func NoDelay(ctx context.Context, d time.Duration) error { return nil }
