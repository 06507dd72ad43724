package cache

// DefaultMaxKeyLength bounds the keys accepted by Set when no explicit limit is configured.
const DefaultMaxKeyLength = 1024

// Cache stores detection results keyed by a request fingerprint.
//
// Implementations must be safe for concurrent use. Concurrent misses on the
// same key may both compute and Set the value; the last writer wins.
type Cache[V any] interface {
	// TryGet returns the cached value for key and whether it was present.
	TryGet(key string) (V, bool)
	// Set stores value under key. It returns false when the write is
	// rejected, for example because the key is longer than the configured maximum.
	Set(key string, value V) bool
}

// Nop is a Cache that never stores anything.
type Nop[V any] struct{}

func (Nop[V]) TryGet(string) (V, bool) {
	var zero V
	return zero, false
}

func (Nop[V]) Set(string, V) bool { return false }

func keyAllowed(key string, limit int) bool {
	if limit <= 0 {
		limit = DefaultMaxKeyLength
	}
	return len(key) <= limit
}
