package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// tokenBucket is a simple refill-on-demand limiter.
type tokenBucket struct {
	rate       float64
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(rate float64, capacity int) *tokenBucket {
	return &tokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// limiterSet keeps one bucket per key and drops buckets idle beyond the
// expiry so the map cannot grow without bound.
type limiterSet struct {
	mu       sync.Mutex
	buckets  map[string]*tokenBucket
	lastSeen map[string]time.Time
}

func newLimiterSet() *limiterSet {
	return &limiterSet{
		buckets:  make(map[string]*tokenBucket),
		lastSeen: make(map[string]time.Time),
	}
}

func (s *limiterSet) get(key string, rate float64, burst int) *tokenBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[key]
	if !ok {
		bucket = newTokenBucket(rate, burst)
		s.buckets[key] = bucket
	}
	s.lastSeen[key] = time.Now()
	return bucket
}

func (s *limiterSet) dropIdle(olderThan time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	for key, seen := range s.lastSeen {
		if seen.Before(cutoff) {
			delete(s.buckets, key)
			delete(s.lastSeen, key)
		}
	}
}

var ipLimiters = newLimiterSet()

func init() {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			ipLimiters.dropIdle(time.Hour)
		}
	}()
}

// IPRateLimiter throttles per client IP with a token bucket of the given
// sustained rate and burst.
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		bucket := ipLimiters.get(c.ClientIP(), rate, burst)
		if !bucket.allow() {
			response.Fail(c, code.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PathRateLimiter throttles per IP and path. Used on expensive endpoints
// like login and password reset where the per-IP limit alone is too loose.
func PathRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.Request.URL.Path
		bucket := ipLimiters.get(key, rate, burst)
		if !bucket.allow() {
			response.Fail(c, code.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
