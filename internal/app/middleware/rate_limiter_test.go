package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTokenBucketBurstThenRefill(t *testing.T) {
	bucket := newTokenBucket(10, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, bucket.allow(), "request %d inside the burst", i)
	}
	assert.False(t, bucket.allow(), "burst exhausted")

	// At 10 tokens/s one request is allowed again after ~100ms.
	time.Sleep(150 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestLimiterSetDropIdle(t *testing.T) {
	set := newLimiterSet()
	set.get("1.2.3.4", 1, 1)
	set.get("5.6.7.8", 1, 1)

	set.mu.Lock()
	set.lastSeen["1.2.3.4"] = time.Now().Add(-2 * time.Hour)
	set.mu.Unlock()

	set.dropIdle(time.Hour)

	set.mu.Lock()
	defer set.mu.Unlock()
	assert.NotContains(t, set.buckets, "1.2.3.4")
	assert.Contains(t, set.buckets, "5.6.7.8")
}

func TestIPRateLimiterRejectsOverBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// A rate of effectively zero keeps the bucket from refilling during
	// the test.
	r.GET("/limited", IPRateLimiter(0.0001, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	status := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "10.9.8.7:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, status())
	assert.Equal(t, http.StatusOK, status())
	assert.Equal(t, http.StatusTooManyRequests, status())
}
