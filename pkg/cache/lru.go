package cache

import (
	"container/list"
	"sync"
)

type lruEntry[V any] struct {
	key   string
	value V
}

// LRUOption configures an LRU cache.
type LRUOption[V any] func(*LRU[V])

// WithMaxKeyLength sets the longest key Set accepts.
// Non-positive values fall back to DefaultMaxKeyLength.
func WithMaxKeyLength[V any](n int) LRUOption[V] {
	return func(c *LRU[V]) {
		c.maxKeyLength = n
	}
}

// WithEvictCallback registers a function called for every evicted entry.
func WithEvictCallback[V any](fn func(key string, value V)) LRUOption[V] {
	return func(c *LRU[V]) {
		c.onEvict = fn
	}
}

// LRU is a thread-safe in-memory Cache.
// When the cache reaches its capacity, the least recently used item is evicted.
type LRU[V any] struct {
	capacity     int
	maxKeyLength int
	items        map[string]*list.Element
	eviction     *list.List
	mu           sync.Mutex
	onEvict      func(key string, value V)
}

var _ Cache[int] = (*LRU[int])(nil)

// NewLRU creates a new LRU cache with the specified capacity.
// The capacity must be positive, otherwise it panics.
func NewLRU[V any](capacity int, opts ...LRUOption[V]) *LRU[V] {
	if capacity <= 0 {
		panic("LRU cache capacity must be positive")
	}
	c := &LRU[V]{
		capacity:     capacity,
		maxKeyLength: DefaultMaxKeyLength,
		items:        make(map[string]*list.Element, capacity),
		eviction:     list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TryGet retrieves a value and marks it as recently used.
func (c *LRU[V]) TryGet(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*lruEntry[V]).value, true
	}

	var zero V
	return zero, false
}

// Set adds or updates a value. Keys longer than the configured maximum are rejected.
func (c *LRU[V]) Set(key string, value V) bool {
	if !keyAllowed(key, c.maxKeyLength) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*lruEntry[V]).value = value
		return true
	}

	c.items[key] = c.eviction.PushFront(&lruEntry[V]{key: key, value: value})
	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}
	return true
}

// Remove deletes key and reports whether it was present.
func (c *LRU[V]) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if ok {
		c.removeElement(elem)
	}
	return ok
}

func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Clear removes all items. The evict callback is called for each of them.
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for _, elem := range c.items {
			entry := elem.Value.(*lruEntry[V])
			c.onEvict(entry.key, entry.value)
		}
	}

	c.items = make(map[string]*list.Element, c.capacity)
	c.eviction.Init()
}

// Must be called with lock held.
func (c *LRU[V]) evictOldest() {
	if elem := c.eviction.Back(); elem != nil {
		c.removeElement(elem)
	}
}

// Must be called with lock held.
func (c *LRU[V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	entry := elem.Value.(*lruEntry[V])
	delete(c.items, entry.key)

	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}
