// Package cache provides result caches for the detector.
//
// Cache is the contract the detector consumes: TryGet returns a cached value
// and Set stores one, returning false when the write is rejected. Every
// implementation rejects keys longer than its configured maximum
// (DefaultMaxKeyLength unless overridden), so a hostile client cannot grow
// the cache with arbitrarily long User-Agent strings.
//
// Two implementations are included:
//
//   - LRU, a mutex-guarded in-memory cache with least recently used eviction
//     and an optional eviction callback.
//   - Redis, a JSON-encoded cache shared between processes through
//     github.com/redis/go-redis/v9. Keys are hashed with SHA-256 before they
//     are sent to the server.
//
// Usage:
//
//	lru := cache.NewLRU[uadetector.Info](10_000)
//	det, err := uadetector.New(uadetector.WithCache(lru))
//
//	client, err := cache.ConnectRedis(ctx, cfg)
//	shared := cache.NewRedis[uadetector.Info](client, cache.WithRedisTTL(time.Hour))
//
// Neither implementation guarantees single computation per key: concurrent
// misses may both compute and store a result, and the last write wins.
package cache
