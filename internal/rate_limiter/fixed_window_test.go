package ratelimiter

import (
	"testing"
	"time"

	"github.com/scribearc/scribearc/internal/config"
)

func TestFixedWindowRateLimiter(t *testing.T) {
	t.Run("disabled limiter always allows", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimiterConfig{
			RequestsPerTimeFrame: 1,
			TimeFrame:            time.Minute,
			Enabled:              false,
		}, nil)

		for i := 0; i < 10; i++ {
			if allow, _ := rl.Allow("client"); !allow {
				t.Fatalf("request %d denied with limiter disabled", i)
			}
		}
	})

	t.Run("denies past the window limit", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimiterConfig{
			RequestsPerTimeFrame: 3,
			TimeFrame:            time.Minute,
			Enabled:              true,
		}, nil)

		for i := 0; i < 3; i++ {
			if allow, _ := rl.Allow("client"); !allow {
				t.Fatalf("request %d denied below the limit", i)
			}
		}

		allow, retryAfter := rl.Allow("client")
		if allow {
			t.Fatal("request above the limit was allowed")
		}
		if retryAfter <= 0 {
			t.Fatalf("expected positive retry-after, got %s", retryAfter)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimiterConfig{
			RequestsPerTimeFrame: 1,
			TimeFrame:            time.Minute,
			Enabled:              true,
		}, nil)

		if allow, _ := rl.Allow("a"); !allow {
			t.Fatal("first request for key a denied")
		}
		if allow, _ := rl.Allow("b"); !allow {
			t.Fatal("first request for key b denied")
		}
		if allow, _ := rl.Allow("a"); allow {
			t.Fatal("second request for key a allowed above the limit")
		}
	})

	t.Run("window rolls over", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimiterConfig{
			RequestsPerTimeFrame: 1,
			TimeFrame:            20 * time.Millisecond,
			Enabled:              true,
		}, nil)

		if allow, _ := rl.Allow("client"); !allow {
			t.Fatal("first request denied")
		}
		if allow, _ := rl.Allow("client"); allow {
			t.Fatal("second request in the same window allowed")
		}

		time.Sleep(30 * time.Millisecond)

		if allow, _ := rl.Allow("client"); !allow {
			t.Fatal("request after window rollover denied")
		}
	})

	t.Run("expired windows are swept", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimiterConfig{
			RequestsPerTimeFrame: 1,
			TimeFrame:            20 * time.Millisecond,
			Enabled:              true,
		}, nil)

		rl.Allow("a")
		rl.Allow("b")

		time.Sleep(30 * time.Millisecond)

		// the next request lands after both windows expired and triggers the
		// sweep, so only its own window may remain
		rl.Allow("c")

		rl.mu.Lock()
		defer rl.mu.Unlock()

		if len(rl.windows) != 1 {
			t.Fatalf("windows map has %d entries after sweep, want 1", len(rl.windows))
		}
		if _, ok := rl.windows["c"]; !ok {
			t.Fatal("window for the live key was swept")
		}
	})
}
