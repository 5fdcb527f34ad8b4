package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
)

// cachedResponse is what gets stored in Redis per cache key.
type cachedResponse struct {
	Status  int                 `json:"status"`
	Headers map[string][]string `json:"headers"`
	Body    []byte              `json:"body"`
}

// cacheKey hashes method, path, sorted query string AND the caller's token.
// Every list and get endpoint is role-scoped, so two callers asking the same
// URL can legitimately get different bodies; the token in the key keeps one
// caller's view from leaking into another's.
func cacheKey(c *gin.Context) string {
	queryParams := c.Request.URL.Query()
	keys := make([]string, 0, len(queryParams))
	for key := range queryParams {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var query string
	for _, key := range keys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			query += key + "=" + value + "&"
		}
	}

	raw := c.Request.Method + " " + c.Request.URL.Path + "?" + query + "#" + c.GetHeader(AuthHeader)
	sum := md5.Sum([]byte(raw))
	return "respcache:" + hex.EncodeToString(sum[:])
}

// Cache serves GET responses from Redis for the given expiration. When the
// Redis service is nil (cache disabled or unreachable at startup) the
// middleware is a pass-through.
func Cache(rs *services.RedisService, expiration time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rs == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)

		var cached cachedResponse
		if err := rs.Get(key, &cached); err == nil {
			for name, values := range cached.Headers {
				for _, value := range values {
					c.Writer.Header().Add(name, value)
				}
			}
			c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
			c.Abort()
			return
		} else if err != redis.Nil {
			// Redis down mid-flight: skip caching for this request.
			c.Next()
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}
		entry := cachedResponse{
			Status:  c.Writer.Status(),
			Headers: map[string][]string{},
			Body:    writer.body.Bytes(),
		}
		// Pagination headers have to survive a cache hit too.
		for _, name := range []string{"X-Total-Pages", "X-Remaining-Pages"} {
			if v := c.Writer.Header().Get(name); v != "" {
				entry.Headers[name] = []string{v}
			}
		}
		_ = rs.Set(key, entry, expiration)
	}
}

// captureWriter tees the response body so it can be stored after the
// handler ran.
type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
