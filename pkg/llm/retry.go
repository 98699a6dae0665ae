package llm

import (
	"context"
	"fmt"
	"time"
)

// Policy bounds retries around the remote call. Sleep is injectable so tests
// can observe backoff without a real clock.
type Policy struct {
	MaxAttempts int
	Backoff     time.Duration
	Sleep       func(time.Duration)
}

// Do runs op up to MaxAttempts times, sleeping Backoff between attempts.
func (p Policy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lastErr = op(); lastErr == nil {
			return nil
		}
		if attempt < attempts {
			sleep(p.Backoff)
		}
	}
	return fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
