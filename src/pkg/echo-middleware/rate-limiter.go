package echomw

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for
// longer than ttl are dropped on the next request.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	rateLimit rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(cfg Config) *RateLimiter {
	return &RateLimiter{
		clients:   make(map[string]*clientLimiter),
		rateLimit: rate.Limit(cfg.MiddlewareRateLimit),
		burst:     cfg.MiddlewareBurst,
		ttl:       time.Duration(cfg.LimiterTTLSeconds) * time.Second,
		now:       time.Now,
	}
}

func (l *RateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.ttl {
		for clientIP, cl := range l.clients {
			if now.Sub(cl.lastSeen) >= l.ttl {
				delete(l.clients, clientIP)
			}
		}
		l.lastSweep = now
	}

	cl, exists := l.clients[ip]
	if !exists {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.rateLimit, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// Middleware answers 429 once a client IP runs out of tokens.
func (l *RateLimiter) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !l.limiterFor(c.RealIP()).Allow() {
			LogRouteAccess(c, tl.Info, "Rate limited", palette.Yellow)
			return c.String(http.StatusTooManyRequests, "Too many requests")
		}
		return next(c)
	}
}
