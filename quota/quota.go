package quota

import (
	"context"
	"sync"
	"time"

	"giftwise/config"
)

// GenerationQuotaLimiter enforces per-minute and daily limits on generation
// provider calls. It is in-memory and assumes a single service instance;
// counters reset on restart.
type GenerationQuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time
}

// NewGenerationQuotaLimiterFromConfig builds a limiter from the
// generation_quota section of config.yaml. Values of 0 or below disable the
// corresponding limit.
func NewGenerationQuotaLimiterFromConfig(cfg config.AppConfig) *GenerationQuotaLimiter {
	q := cfg.GenerationQuota

	requestsPerDay := q.RequestsPerDay
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}

	requestsPerMinute := q.RequestsPerMinute
	if requestsPerMinute < 0 {
		requestsPerMinute = 0
	}

	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}

	return &GenerationQuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
	}
}

// WaitAndReserve applies the per-minute and daily limits before a generation
// pass.
// - Daily limit exhausted: returns (false, nil); the caller must skip the call.
// - Context cancelled while waiting: returns (false, error).
func (l *GenerationQuotaLimiter) WaitAndReserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()

		now := time.Now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			nextAllowed := l.lastCall.Add(l.interval)
			delay = time.Until(nextAllowed)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		// Release the lock while waiting, then re-evaluate.
		l.mu.Unlock()
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
