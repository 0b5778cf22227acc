package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters for an endpoint class.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Rate limit profiles per endpoint class. Each can be overridden via
// RATELIMIT_{PROFILE}_{REQUESTS,WINDOW_SEC,BURST} environment variables,
// which the e2e suite uses to tighten limits.
var (
	// StrictLimit guards public mutation endpoints such as invitation
	// redemption.
	StrictLimit = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	// ModerateLimit covers authenticated admin operations.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20}

	// LenientLimit covers authenticated read endpoints; dashboards poll.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}

	// PublicLimit covers health probes.
	PublicLimit = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", PublicLimit)
}

// ParseRateLimitFromEnv reads overrides for a profile from the environment.
// Variables follow RATELIMIT_{prefix}_{REQUESTS,WINDOW_SEC,BURST}.
func ParseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	cfg := def

	if val := os.Getenv("RATELIMIT_" + prefix + "_REQUESTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.RequestsPerWindow = n
		}
	}
	if val := os.Getenv("RATELIMIT_" + prefix + "_WINDOW_SEC"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Window = time.Duration(n) * time.Second
		}
	}
	if val := os.Getenv("RATELIMIT_" + prefix + "_BURST"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Burst = n
		}
	}

	return cfg
}

// KeyExtractor derives the rate-limit bucket key from a request.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor keys by client IP, honouring X-Forwarded-For / X-Real-IP
// set by the reverse proxy.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if parts := strings.Split(xff, ","); len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if rip := r.Header.Get("X-Real-IP"); rip != "" {
		return rip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// CoachKeyExtractor keys by the authenticated coach id, falling back to IP
// for unauthenticated requests.
func CoachKeyExtractor(r *http.Request) string {
	if id := CoachIDFromCtx(r.Context()); id != "" {
		return "coach:" + id
	}
	return "ip:" + IPKeyExtractor(r)
}

// limiterPool holds one token bucket per key and evicts idle entries so the
// map does not grow without bound.
type limiterPool struct {
	mu       sync.Mutex
	limiters map[string]*pooledLimiter
	cfg      RateLimitConfig
}

type pooledLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterPool(cfg RateLimitConfig) *limiterPool {
	p := &limiterPool{
		limiters: make(map[string]*pooledLimiter),
		cfg:      cfg,
	}
	go p.evictLoop()
	return p
}

func (p *limiterPool) allow(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	pl, ok := p.limiters[key]
	if !ok {
		limit := rate.Limit(float64(p.cfg.RequestsPerWindow) / p.cfg.Window.Seconds())
		pl = &pooledLimiter{limiter: rate.NewLimiter(limit, p.cfg.Burst)}
		p.limiters[key] = pl
	}
	pl.lastSeen = time.Now()
	return pl.limiter.Allow()
}

func (p *limiterPool) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-10 * time.Minute)
		p.mu.Lock()
		for key, pl := range p.limiters {
			if pl.lastSeen.Before(cutoff) {
				delete(p.limiters, key)
			}
		}
		p.mu.Unlock()
	}
}

// RateLimit returns a middleware enforcing cfg per key extracted from the
// request. Rejected requests get 429 with a Retry-After hint.
func RateLimit(cfg RateLimitConfig, key KeyExtractor) Middleware {
	pool := newLimiterPool(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !pool.allow(key(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
				WriteError(w, http.StatusTooManyRequests, "rate_limited",
					"too many requests, slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP enforces cfg keyed by client IP.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimit(cfg, IPKeyExtractor)
}

// RateLimitByCoach enforces cfg keyed by authenticated coach id. Must run
// after AuthnMiddleware in the chain.
func RateLimitByCoach(cfg RateLimitConfig) Middleware {
	return RateLimit(cfg, CoachKeyExtractor)
}
