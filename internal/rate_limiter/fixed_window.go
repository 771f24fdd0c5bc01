package ratelimiter

import (
	"sync"
	"time"

	"github.com/scribearc/scribearc/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client key inside fixed time
// windows. Counts reset when the window rolls over.
type FixedWindowRateLimiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
	cfg       config.RateLimiterConfig
	logger    *zap.SugaredLogger
}

type window struct {
	count     int
	startedAt time.Time
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		windows: make(map[string]*window),
		cfg:     cfg,
		logger:  logger,
	}
}

// Allow reports whether the request identified by key fits in the current
// window, and the wait until the window resets when it does not.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	if !rl.cfg.Enabled {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.sweepExpired(now)

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.startedAt) >= rl.cfg.TimeFrame {
		rl.windows[key] = &window{count: 1, startedAt: now}
		return true, 0
	}

	if w.count >= rl.cfg.RequestsPerTimeFrame {
		retryAfter := rl.cfg.TimeFrame - now.Sub(w.startedAt)
		rl.logger.Debugf("Rate limit exceeded for %s, retry after %s", key, retryAfter)
		return false, retryAfter
	}

	w.count++

	return true, 0
}

// sweepExpired drops windows that already rolled over, at most once per time
// frame, so keys seen once do not accumulate forever. Caller holds the lock.
func (rl *FixedWindowRateLimiter) sweepExpired(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.cfg.TimeFrame {
		return
	}
	rl.lastSweep = now

	for key, w := range rl.windows {
		if now.Sub(w.startedAt) >= rl.cfg.TimeFrame {
			delete(rl.windows, key)
		}
	}
}
