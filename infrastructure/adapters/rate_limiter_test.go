package adapters

import (
	"testing"
	"time"
)

func TestRateLimiterFirstCallDoesNotBlock(t *testing.T) {
	current := time.Unix(1000, 0)
	slept := make([]time.Duration, 0)

	limiter := NewIntervalRateLimiterWithClock(time.Second,
		func() time.Time { return current },
		func(d time.Duration) { slept = append(slept, d) })

	limiter.WaitIfNeeded()
	if len(slept) != 0 {
		t.Fatalf("first call should not sleep, slept %v", slept)
	}
}

func TestRateLimiterBlocksUntilIntervalElapsed(t *testing.T) {
	current := time.Unix(1000, 0)
	slept := make([]time.Duration, 0)

	limiter := NewIntervalRateLimiterWithClock(time.Second,
		func() time.Time { return current },
		func(d time.Duration) {
			slept = append(slept, d)
			current = current.Add(d)
		})

	limiter.WaitIfNeeded()
	current = current.Add(300 * time.Millisecond)
	limiter.WaitIfNeeded()

	if len(slept) != 1 {
		t.Fatalf("expected one sleep, got %v", slept)
	}
	if slept[0] != 700*time.Millisecond {
		t.Fatalf("expected 700ms sleep to fill the interval, got %v", slept[0])
	}
}

func TestRateLimiterSkipsSleepAfterLongGap(t *testing.T) {
	current := time.Unix(1000, 0)
	slept := make([]time.Duration, 0)

	limiter := NewIntervalRateLimiterWithClock(time.Second,
		func() time.Time { return current },
		func(d time.Duration) { slept = append(slept, d) })

	limiter.WaitIfNeeded()
	current = current.Add(2 * time.Second)
	limiter.WaitIfNeeded()

	if len(slept) != 0 {
		t.Fatalf("no sleep expected after a long gap, slept %v", slept)
	}
}
