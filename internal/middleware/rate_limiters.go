package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// visitor pairs a rate limiter with the last time its IP was seen, so idle
// entries can be expired.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitByIP applies per-IP rate limiting to the routes it wraps. Each IP
// gets an independent token bucket of rps tokens per second with a burst of
// rps; entries idle longer than expiration are dropped every cleanupInterval.
func RateLimitByIP(rps int, cleanupInterval time.Duration, expiration time.Duration) gin.HandlerFunc {
	var visitors sync.Map

	go func() {
		for range time.Tick(cleanupInterval) {
			visitors.Range(func(key, value interface{}) bool {
				if time.Since(value.(*visitor).lastSeen) > expiration {
					visitors.Delete(key)
				}
				return true
			})
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		actual, _ := visitors.LoadOrStore(ip, &visitor{
			limiter:  rate.NewLimiter(rate.Limit(rps), rps),
			lastSeen: time.Now(),
		})

		v := actual.(*visitor)
		v.lastSeen = time.Now()

		if !v.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
