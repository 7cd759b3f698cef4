package adapters

import (
	"generate-persona-audio/application/ports/outbound"
	"time"
)

// IntervalRateLimiter blocks until a minimum interval has elapsed since
// the previous call start. The clock and sleep functions are injectable
// so tests run without real waiting. Not safe for concurrent use; the
// pipeline is single-threaded.
type IntervalRateLimiter struct {
	minInterval time.Duration
	lastCall    time.Time
	now         func() time.Time
	sleep       func(time.Duration)
}

func NewIntervalRateLimiter(minInterval time.Duration) *IntervalRateLimiter {
	return &IntervalRateLimiter{
		minInterval: minInterval,
		now:         time.Now,
		sleep:       time.Sleep,
	}
}

// NewIntervalRateLimiterWithClock is the test constructor.
func NewIntervalRateLimiterWithClock(minInterval time.Duration, now func() time.Time, sleep func(time.Duration)) *IntervalRateLimiter {
	return &IntervalRateLimiter{
		minInterval: minInterval,
		now:         now,
		sleep:       sleep,
	}
}

func (r *IntervalRateLimiter) WaitIfNeeded() {
	if !r.lastCall.IsZero() {
		if elapsed := r.now().Sub(r.lastCall); elapsed < r.minInterval {
			r.sleep(r.minInterval - elapsed)
		}
	}
	r.lastCall = r.now()
}

var _ outbound.CallPacer = (*IntervalRateLimiter)(nil)
