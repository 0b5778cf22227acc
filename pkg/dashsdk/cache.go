package dashsdk

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is the fresh window for cached reads.
const DefaultCacheTTL = 30 * time.Second

// Cache layers stale-while-revalidate reads over an SDKClient. Dashboards
// poll the same handful of endpoints; the cache answers from memory inside
// the TTL, serves the stale value while a refresh is in flight, and collapses
// concurrent fetches for the same key into a single request.
type Cache struct {
	Client *SDKClient
	TTL    time.Duration // fresh window; DefaultCacheTTL when zero

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     any
	fetchedAt time.Time
}

// NewCache wraps client with a read cache using DefaultCacheTTL.
func NewCache(client *SDKClient) *Cache {
	return &Cache{
		Client:  client,
		TTL:     DefaultCacheTTL,
		entries: make(map[string]cacheEntry),
	}
}

func (c *Cache) ttl() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return DefaultCacheTTL
}

func (c *Cache) lookup(key string) (cacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e, ok
}

func (c *Cache) store(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[string]cacheEntry)
	}
	c.entries[key] = cacheEntry{value: value, fetchedAt: time.Now()}
}

// Invalidate drops the given keys so the next read refetches. With no keys it
// drops everything.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(keys) == 0 {
		c.entries = make(map[string]cacheEntry)
		return
	}
	for _, key := range keys {
		delete(c.entries, key)
	}
}

// fetchCached implements the stale-while-revalidate read path. A fresh entry
// is returned as-is; a stale entry is returned immediately while one
// background refresh runs; a missing entry blocks on a deduplicated fetch.
func fetchCached[T any](ctx context.Context, c *Cache, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := c.lookup(key); ok {
		value := entry.value.(T)
		if time.Since(entry.fetchedAt) < c.ttl() {
			return value, nil
		}

		// Stale: hand back the old value and refresh off the request path.
		// The singleflight group ensures only one refresh per key.
		go func() {
			_, _, _ = c.group.Do(key, func() (any, error) {
				refreshCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				fresh, err := fetch(refreshCtx)
				if err != nil {
					return nil, err
				}
				c.store(key, fresh)
				return fresh, nil
			})
		}()
		return value, nil
	}

	out, err, _ := c.group.Do(key, func() (any, error) {
		fresh, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, fresh)
		return fresh, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out.(T), nil
}

// Cache keys for the write paths to invalidate.
const (
	CacheKeyCoaches      = "coaches"
	CacheKeyTeamStats    = "team_stats"
	CacheKeyStats        = "stats"
	CacheKeyIntelligence = "intelligence"
	CacheKeyChurn        = "churn"
)

func clientsKey(q ClientQuery) string {
	return "clients|" + q.Search + "|" + q.Status + "|" + q.Sort
}

func coachesKey(q CoachQuery) string {
	return CacheKeyCoaches + "|" + q.Search + "|" + q.Status + "|" + q.Sort
}

// ListClients is the cached form of SDKClient.ListClients. Each distinct
// query caches separately.
func (c *Cache) ListClients(ctx context.Context, q ClientQuery) ([]Client, error) {
	return fetchCached(ctx, c, clientsKey(q), func(ctx context.Context) ([]Client, error) {
		return c.Client.ListClients(ctx, q)
	})
}

// ListCoaches is the cached form of SDKClient.ListCoaches.
func (c *Cache) ListCoaches(ctx context.Context, q CoachQuery) ([]Coach, error) {
	return fetchCached(ctx, c, coachesKey(q), func(ctx context.Context) ([]Coach, error) {
		return c.Client.ListCoaches(ctx, q)
	})
}

// GetTeamStats is the cached form of SDKClient.GetTeamStats.
func (c *Cache) GetTeamStats(ctx context.Context) (*TeamStats, error) {
	return fetchCached(ctx, c, CacheKeyTeamStats, func(ctx context.Context) (*TeamStats, error) {
		return c.Client.GetTeamStats(ctx)
	})
}

// GetDashboardStats is the cached form of SDKClient.GetDashboardStats.
func (c *Cache) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	return fetchCached(ctx, c, CacheKeyStats, func(ctx context.Context) (*DashboardStats, error) {
		return c.Client.GetDashboardStats(ctx)
	})
}

// GetIntelligenceFeed is the cached form of SDKClient.GetIntelligenceFeed.
func (c *Cache) GetIntelligenceFeed(ctx context.Context) ([]IntelligenceItem, error) {
	return fetchCached(ctx, c, CacheKeyIntelligence, func(ctx context.Context) ([]IntelligenceItem, error) {
		return c.Client.GetIntelligenceFeed(ctx)
	})
}

// GetChurnReport is the cached form of SDKClient.GetChurnReport.
func (c *Cache) GetChurnReport(ctx context.Context) ([]ChurnRisk, error) {
	return fetchCached(ctx, c, CacheKeyChurn, func(ctx context.Context) ([]ChurnRisk, error) {
		return c.Client.GetChurnReport(ctx)
	})
}
