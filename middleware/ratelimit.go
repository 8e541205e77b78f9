package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CounterStore holds fixed-window request counters per key. It is the
// collaborator behind RateLimiter and can be backed by any shared store.
type CounterStore interface {
	// Get returns the current count and window end for key.
	Get(key string) (count int, resetAt time.Time, ok bool)

	// Increment adds one to key, starting a new window of the given length
	// when none is active, and returns the new count.
	Increment(key string, window time.Duration) (count int, resetAt time.Time)

	// Reset forgets key.
	Reset(key string)
}

type window struct {
	count   int
	resetAt time.Time
}

// MemoryStore is an in-process CounterStore
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(key string) (int, time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[key]
	if !ok || !m.now().Before(w.resetAt) {
		return 0, time.Time{}, false
	}
	return w.count, w.resetAt, true
}

func (m *MemoryStore) Increment(key string, length time.Duration) (int, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(length)}
		m.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt
}

func (m *MemoryStore) Reset(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.windows, key)
}

// Prune drops expired windows
func (m *MemoryStore) Prune() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, w := range m.windows {
		if !now.Before(w.resetAt) {
			delete(m.windows, key)
		}
	}
}

// RateLimiter allows limit requests per client IP per window
type RateLimiter struct {
	store  CounterStore
	limit  int
	window time.Duration
}

func NewRateLimiter(store CounterStore, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		store:  store,
		limit:  limit,
		window: window,
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, resetAt := rl.store.Increment(c.ClientIP(), rl.window)

		remaining := rl.limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if count > rl.limit {
			retryAfter := int(time.Until(resetAt).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":    "Rate limit exceeded. Please try again later.",
				"category": "rate-limited",
			})
			return
		}

		c.Next()
	}
}
