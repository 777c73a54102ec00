package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinwf531135-cmd/bi-leads/pkg/config"
)

// SecurityHeadersMiddleware adds baseline security headers to all responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent clickjacking attacks
		c.Header("X-Frame-Options", "DENY")

		// Prevent MIME-type confusion attacks
		c.Header("X-Content-Type-Options", "nosniff")

		// Control referrer information
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Lead data is personal data; keep it out of shared caches
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Header("Pragma", "no-cache")

		c.Next()
	}
}

// CORSMiddleware handles Cross-Origin Resource Sharing. The landing page is
// served from another local process in development, so localhost origins are
// allowed there; production origins come from configuration.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var allowedOrigins []string
		if cfg.IsDevelopment() {
			allowedOrigins = []string{
				"http://localhost:3000",
				"http://localhost:8080",
				"http://127.0.0.1:3000",
				"http://127.0.0.1:8080",
			}
		} else {
			allowedOrigins = cfg.GetAllowedOrigins()
		}

		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin {
				c.Header("Access-Control-Allow-Origin", origin)
				break
			}
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Requested-With")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// InputValidationMiddleware caps request size and restricts content types on
// write requests. Lead submissions arrive as multipart or urlencoded forms;
// everything else the API speaks is JSON.
func InputValidationMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowedTypes := []string{
		"application/json",
		"multipart/form-data",
		"application/x-www-form-urlencoded",
	}

	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxRequestSize)

		if c.Request.Method == "POST" || c.Request.Method == "PUT" {
			contentType := c.GetHeader("Content-Type")
			if contentType == "" {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Content-Type header is required",
				})
				c.Abort()
				return
			}

			isValidType := false
			for _, allowedType := range allowedTypes {
				if strings.HasPrefix(contentType, allowedType) {
					isValidType = true
					break
				}
			}

			if !isValidType {
				c.JSON(http.StatusUnsupportedMediaType, gin.H{
					"error":         "Unsupported content type",
					"allowed_types": allowedTypes,
				})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// rateLimiter tracks per-client request timestamps inside a sliding window.
// Clients whose windows have emptied are swept out so the map does not grow
// with every distinct IP ever seen.
type rateLimiter struct {
	mu        sync.Mutex
	clients   map[string][]time.Time
	lastSweep time.Time
	limit     int
	window    time.Duration
	now       func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		clients: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// allow reports whether the client may proceed and records the request if so
func (rl *rateLimiter) allow(clientIP string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) > rl.window {
		rl.sweep(now)
		rl.lastSweep = now
	}

	timestamps := rl.clients[clientIP][:0]
	for _, timestamp := range rl.clients[clientIP] {
		if now.Sub(timestamp) <= rl.window {
			timestamps = append(timestamps, timestamp)
		}
	}

	if len(timestamps) >= rl.limit {
		rl.clients[clientIP] = timestamps
		return false
	}

	rl.clients[clientIP] = append(timestamps, now)
	return true
}

// sweep drops clients with no requests left in the window. Caller holds the
// lock.
func (rl *rateLimiter) sweep(now time.Time) {
	for ip, timestamps := range rl.clients {
		live := false
		for _, timestamp := range timestamps {
			if now.Sub(timestamp) <= rl.window {
				live = true
				break
			}
		}
		if !live {
			delete(rl.clients, ip)
		}
	}
}

// RateLimitingMiddleware provides basic per-IP rate limiting backed by an
// in-memory window. Good enough for a single local process.
func RateLimitingMiddleware() gin.HandlerFunc {
	limiter := newRateLimiter(100, time.Minute)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": "60",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// LoggingMiddleware logs every request with latency and client details
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		if raw != "" {
			path = path + "?" + raw
		}

		fmt.Printf("[LEADS] %v | %3d | %13v | %15s | %-7s %s\n",
			start.Format("2006/01/02 - 15:04:05"),
			statusCode,
			latency,
			c.ClientIP(),
			c.Request.Method,
			path,
		)
	}
}
