package middleware

import (
	"sync"
	"time"
)

// RateLimiter caps requests per user with a sliding window. Mostly here
// to stop someone spamming /leaderboard into a full-table scan loop.
type RateLimiter struct {
	mu      sync.Mutex
	history map[int64][]time.Time
	limit   int
	window  time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewRateLimiter creates a limiter allowing limit events per window per
// user and starts its background cleanup.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		history: make(map[int64][]time.Time),
		limit:   limit,
		window:  window,
		stopCh:  make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Close stops the cleanup goroutine. Call on shutdown.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Allow reports whether the user may proceed and records the attempt.
func (rl *RateLimiter) Allow(userID int64) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	recent := rl.withinWindow(rl.history[userID], now)

	if len(recent) >= rl.limit {
		rl.history[userID] = recent
		return false
	}

	rl.history[userID] = append(recent, now)
	return true
}

func (rl *RateLimiter) withinWindow(times []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-rl.window)
	var recent []time.Time
	for _, t := range times {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	return recent
}

// cleanupLoop drops users whose whole window has expired so the map
// doesn't grow forever.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for userID, times := range rl.history {
				recent := rl.withinWindow(times, now)
				if len(recent) == 0 {
					delete(rl.history, userID)
				} else {
					rl.history[userID] = recent
				}
			}
			rl.mu.Unlock()
		}
	}
}
