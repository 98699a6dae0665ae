package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPolicyRetriesUntilSuccess(t *testing.T) {
	var slept []time.Duration
	p := Policy{
		MaxAttempts: 3,
		Backoff:     time.Second,
		Sleep:       func(d time.Duration) { slept = append(slept, d) },
	}

	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v, want nil", err)
	}
	if calls != 3 {
		t.Errorf("op called %d times, want 3", calls)
	}
	if len(slept) != 2 {
		t.Fatalf("slept %d times, want 2", len(slept))
	}
	for _, d := range slept {
		if d != time.Second {
			t.Errorf("slept %v, want %v", d, time.Second)
		}
	}
}

func TestPolicyExhaustsAttempts(t *testing.T) {
	sentinel := errors.New("still broken")
	p := Policy{MaxAttempts: 3, Backoff: time.Second, Sleep: func(time.Duration) {}}

	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		return sentinel
	})
	if calls != 3 {
		t.Errorf("op called %d times, want 3", calls)
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("Do() error = %v, want wrapped %v", err, sentinel)
	}
}

func TestPolicyZeroAttemptsRunsOnce(t *testing.T) {
	p := Policy{Sleep: func(time.Duration) {}}
	calls := 0
	if err := p.Do(context.Background(), func() error { calls++; return nil }); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("op called %d times, want 1", calls)
	}
}

func TestPolicyStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := Policy{MaxAttempts: 3, Sleep: func(time.Duration) {}}
	calls := 0
	err := p.Do(ctx, func() error { calls++; return errors.New("x") })
	if calls != 0 {
		t.Errorf("op called %d times, want 0", calls)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
}
