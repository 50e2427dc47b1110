package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"maidly/config"
	"maidly/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	limiters   = make(map[string]*clientLimiter)
	limitersMu sync.Mutex
)

func getLimiter(ip string) *rate.Limiter {
	limitersMu.Lock()
	defer limitersMu.Unlock()

	if cl, ok := limiters[ip]; ok {
		cl.lastSeen = time.Now()
		return cl.limiter
	}

	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 100
	}
	limiter := rate.NewLimiter(rate.Limit(float64(perMin)/60), perMin)
	limiters[ip] = &clientLimiter{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

// CleanupLimiters drops limiters for clients idle longer than the window.
// Run it in its own goroutine.
func CleanupLimiters() {
	for {
		time.Sleep(5 * time.Minute)
		limitersMu.Lock()
		for ip, cl := range limiters {
			if time.Since(cl.lastSeen) > 10*time.Minute {
				delete(limiters, ip)
			}
		}
		limitersMu.Unlock()
	}
}

// RateLimiter throttles requests per client IP.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !getLimiter(ip).Allow() {
			utils.JSONError(c, http.StatusTooManyRequests, "Too many requests", "Slow down and try again shortly.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func getClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
