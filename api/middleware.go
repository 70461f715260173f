package api

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	limiterSweepSize = 10000
	limiterIdleTime  = time.Hour
)

// recovery turns a panic into the generic 500 response
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("panic: %v", r)
				log.WithField("path", c.Request.URL.Path).Error(err)
				sentry.CaptureException(err)
				abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
			}
		}()
		c.Next()
	}
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		h.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Next()
	}
}

// requestLogger writes one line per request
func requestLogger(name string) gin.HandlerFunc {
	entry := logrus.WithField("prefix", name)
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"status":  c.Writer.Status(),
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"ip":      clientIP(c),
			"latency": time.Since(start),
		}
		if len(c.Errors) > 0 {
			entry.WithFields(fields).Warn(c.Errors.String())
		} else {
			entry.WithFields(fields).Info()
		}
	}
}

// clientIP prefers the addresses set by a reverse proxy
func clientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}

	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(c.Request.RemoteAddr))
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

// rateSpec is a limit like "10/minute"
type rateSpec struct {
	count  int
	period time.Duration
}

func parseRateSpec(spec string) (rateSpec, error) {
	parts := strings.SplitN(spec, "/", 2)
	if len(parts) != 2 {
		return rateSpec{}, fmt.Errorf("invalid rate limit: %s", spec)
	}

	count, err := strconv.Atoi(parts[0])
	if err != nil || count <= 0 {
		return rateSpec{}, fmt.Errorf("invalid rate limit: %s", spec)
	}

	var period time.Duration
	switch parts[1] {
	case "second":
		period = time.Second
	case "minute":
		period = time.Minute
	case "hour":
		period = time.Hour
	case "day":
		period = 24 * time.Hour
	default:
		return rateSpec{}, fmt.Errorf("invalid rate limit period: %s", spec)
	}

	return rateSpec{count: count, period: period}, nil
}

func (r rateSpec) limiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(r.period/time.Duration(r.count)), r.count)
}

type visitor struct {
	limiters []*rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps token buckets per route and client ip
type rateLimiter struct {
	sync.Mutex
	visitors map[string]*visitor
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		visitors: map[string]*visitor{},
	}
}

// allow takes a token from every bucket of the key. When one bucket is
// empty the tokens already reserved are handed back.
func (l *rateLimiter) allow(key string, specs []rateSpec, now time.Time) bool {
	l.Lock()
	defer l.Unlock()

	if len(l.visitors) >= limiterSweepSize {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > limiterIdleTime {
				delete(l.visitors, k)
			}
		}
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiters: make([]*rate.Limiter, 0, len(specs))}
		for _, spec := range specs {
			v.limiters = append(v.limiters, spec.limiter())
		}
		l.visitors[key] = v
	}
	v.lastSeen = now

	reserved := make([]*rate.Reservation, 0, len(v.limiters))
	for _, lim := range v.limiters {
		r := lim.ReserveN(now, 1)
		reserved = append(reserved, r)
		if !r.OK() || r.DelayFrom(now) > 0 {
			for _, r := range reserved {
				r.CancelAt(now)
			}
			return false
		}
	}
	return true
}

// rateLimit limits a route per client ip. Routes sharing a limit still
// count separately. It panics on a malformed limit.
func (s *Server) rateLimit(name string, limits ...string) gin.HandlerFunc {
	specs := make([]rateSpec, 0, len(limits))
	for _, limit := range limits {
		spec, err := parseRateSpec(limit)
		if err != nil {
			panic(err)
		}
		specs = append(specs, spec)
	}

	return func(c *gin.Context) {
		if !s.limiter.allow(name+"|"+c.FullPath()+"|"+clientIP(c), specs, time.Now()) {
			abortWithEncoding(c, http.StatusTooManyRequests, errorTooManyRequests)
			return
		}
		c.Next()
	}
}
