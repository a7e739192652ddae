package server

import (
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/zorgdesk/zorgcmd/config"
)

const versionHeader = "X-Zorgcmd-Version"

// SendVersion is a middleware that adds the current version to the response
func SendVersion(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if w.Header().Get(versionHeader) == "" {
			w.Header().Add(
				versionHeader,
				config.VersionString,
			)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}

// RateLimitStore counts requests per client within a rolling window. It is
// an interface so deployments can swap the in-process store for a shared
// one.
type RateLimitStore interface {
	Increment(key string, window time.Duration) (int64, error)
}

var _ RateLimitStore = &CacheRateLimitStore{}

// CacheRateLimitStore is the in-process RateLimitStore. Counters expire
// with their window, so the store stays small.
type CacheRateLimitStore struct {
	cache *cache.Cache
}

func NewCacheRateLimitStore() *CacheRateLimitStore {
	return &CacheRateLimitStore{
		cache: cache.New(time.Minute, 5*time.Minute),
	}
}

func (s *CacheRateLimitStore) Increment(key string, window time.Duration) (int64, error) {
	// Add is a no-op when the counter already exists.
	_ = s.cache.Add(key, int64(0), window)
	return s.cache.IncrementInt64(key, 1)
}

// RateLimit rejects clients that exceed requestsPerMinute, keyed on the
// client IP resolved by the RealIP middleware. A store failure lets the
// request through: rate limiting protects capacity, it must not become an
// outage of its own.
func RateLimit(store RateLimitStore, requestsPerMinute int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count, err := store.Increment("ratelimit:"+r.RemoteAddr, time.Minute)
			if err != nil {
				log.Warnf("rate limit store error, allowing request: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			if count > int64(requestsPerMinute) {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
