package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/error/response"

	"github.com/gin-gonic/gin"
)

// tokenBucket is a minimal per-key limiter: rate tokens per second up
// to a burst capacity
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
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.rate
	tb.lastRefill = now
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

var (
	ipLimiters   = make(map[string]*tokenBucket)
	ipLimitersMu sync.Mutex
)

func getIPLimiter(ip string, rate float64, burst int) *tokenBucket {
	ipLimitersMu.Lock()
	defer ipLimitersMu.Unlock()

	limiter, exists := ipLimiters[ip]
	if !exists {
		limiter = newTokenBucket(rate, burst)
		ipLimiters[ip] = limiter
	}
	return limiter
}

// RateLimiter throttles per client IP. Used on the login endpoints to
// slow down credential guessing.
func RateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !getIPLimiter(c.ClientIP(), rate, burst).allow() {
			c.Header("Retry-After", "1")
			c.JSON(http.StatusTooManyRequests, response.ErroResponse{
				Erro: "Muitas requisições. Tente novamente em instantes.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
