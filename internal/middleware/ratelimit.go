package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"gamevault/internal/pkg/response"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit allows perMinute requests per client IP on the routes it
// guards and answers 403 beyond that. Idle limiters are pruned so the
// map does not grow with every IP ever seen.
func RateLimit(perMinute int) gin.HandlerFunc {
	var (
		mu        sync.Mutex
		clients   = make(map[string]*clientLimiter)
		lastPrune = time.Now()
	)

	limit := rate.Every(time.Minute / time.Duration(perMinute))

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(limit, perMinute)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()

		if time.Since(lastPrune) > 10*time.Minute {
			for ip, cl := range clients {
				if time.Since(cl.lastSeen) > 10*time.Minute {
					delete(clients, ip)
				}
			}
			lastPrune = time.Now()
		}
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			response.Error(c, http.StatusForbidden, "Too many requests!")
			c.Abort()
			return
		}

		c.Next()
	}
}
