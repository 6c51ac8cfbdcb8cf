package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CounterStore counts requests per key within the current fixed window.
type CounterStore interface {
	Incr(key string, window time.Duration) (int64, error)
}

// RateLimiter enforces a fixed-window request cap per client IP.
type RateLimiter struct {
	store  CounterStore
	window time.Duration
	max    int64
}

// NewRateLimiter creates a new rate limiter
// window: fixed window duration
// max: maximum requests per client within one window
func NewRateLimiter(store CounterStore, window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		store:  store,
		window: window,
		max:    int64(max),
	}
}

// LimitMiddleware returns a Gin middleware that rate limits requests
func (rl *RateLimiter) LimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := rl.store.Incr(c.ClientIP(), rl.window)
		if err != nil {
			// fail open
			c.Next()
			return
		}

		if count > rl.max {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

type memoryCounter struct {
	count       int64
	windowStart time.Time
}

// MemoryStore keeps fixed-window counters in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]*memoryCounter
}

// NewMemoryStore creates an in-memory counter store.
func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{counters: make(map[string]*memoryCounter)}

	// Clean up stale counters every 5 minutes
	go ms.cleanup()

	return ms
}

// Incr counts one request for key, resetting the counter when its window has
// elapsed.
func (ms *MemoryStore) Incr(key string, window time.Duration) (int64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	counter, exists := ms.counters[key]
	if !exists || now.Sub(counter.windowStart) >= window {
		counter = &memoryCounter{windowStart: now}
		ms.counters[key] = counter
	}

	counter.count++
	return counter.count, nil
}

// cleanup removes expired counters to prevent memory leaks
func (ms *MemoryStore) cleanup() {
	for {
		time.Sleep(5 * time.Minute)
		ms.mu.Lock()
		for key, counter := range ms.counters {
			if time.Since(counter.windowStart) > 10*time.Minute {
				delete(ms.counters, key)
			}
		}
		ms.mu.Unlock()
	}
}
