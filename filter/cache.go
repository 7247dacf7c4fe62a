package filter

import (
	"container/list"
	"sync"
)

// lruCache keeps recently compiled filters so repeated use of the same
// expression (presets, loops over repositories) skips recompilation.
// Safe for concurrent use.
type lruCache struct {
	capacity int
	order    *list.List
	items    map[string]*list.Element

	mu sync.Mutex
}

type cacheEntry struct {
	expression string
	filter     CompiledFilter
}

func newLRUCache(capacity int) *lruCache {
	return &lruCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// Get retrieves a compiled filter and marks it most recently used.
func (c *lruCache) Get(expression string) (CompiledFilter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.items[expression]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(node)
	return node.Value.(*cacheEntry).filter, true
}

// Put stores a compiled filter, evicting the least recently used entry
// when the cache is full.
func (c *lruCache) Put(expression string, filter CompiledFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.items[expression]; ok {
		c.order.MoveToFront(node)
		node.Value.(*cacheEntry).filter = filter
		return
	}

	c.items[expression] = c.order.PushFront(&cacheEntry{expression: expression, filter: filter})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).expression)
	}
}

// Clear removes all cached filters.
func (c *lruCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order.Init()
}

// Size returns the number of cached filters.
func (c *lruCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}
