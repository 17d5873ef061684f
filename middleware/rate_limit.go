package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// idleTimeout is how long a client's limiter is kept after its last request.
const idleTimeout = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitors struct {
	mu        sync.Mutex
	perSecond rate.Limit
	burst     int
	clients   map[string]*visitor
	lastSweep time.Time
}

// allow takes a token from ip's limiter, creating it on first sight.
// Idle clients are swept at most once per idleTimeout.
func (v *visitors) allow(ip string, now time.Time) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if now.Sub(v.lastSweep) > idleTimeout {
		for key, c := range v.clients {
			if now.Sub(c.lastSeen) > idleTimeout {
				delete(v.clients, key)
			}
		}
		v.lastSweep = now
	}

	c, ok := v.clients[ip]
	if !ok {
		c = &visitor{limiter: rate.NewLimiter(v.perSecond, v.burst)}
		v.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// RateLimit rejects requests beyond perSecond with the given burst.
// Each client IP gets its own limiter.
func RateLimit(perSecond float64, burst int) fiber.Handler {
	v := &visitors{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		clients:   make(map[string]*visitor),
		lastSweep: time.Now(),
	}
	return func(c *fiber.Ctx) error {
		if !v.allow(c.IP(), time.Now()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"status": "error", "message": "Too many requests"})
		}
		return c.Next()
	}
}
