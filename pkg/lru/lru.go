// Package lru provides a byte-bounded LRU cache used to memoize encodings
package lru

import (
	"container/list"
	"sync"

	"github.com/AdrianWangs/go-buffer/pkg/logger"
)

// Value is the interface that all values stored in the cache must implement
type Value interface {
	// Len returns the size of the value in bytes
	Len() int
}

// Cache is a thread-safe LRU cache whose budget is measured in bytes of keys plus values
type Cache struct {
	mutex     sync.Mutex
	maxBytes  int64                    // 0 means no limit
	nbytes    int64                    // current usage in bytes
	ll        *list.List               // front is least recently used
	items     map[string]*list.Element // key -> list element
	hits      int64
	misses    int64
	OnEvicted func(key string, value Value)
}

type entry struct {
	key   string
	value Value
}

// Stats is a snapshot of cache counters
type Stats struct {
	Entries int
	Bytes   int64
	Hits    int64
	Misses  int64
}

// New creates a cache limited to maxBytes with an optional eviction callback
func New(maxBytes int64, onEvicted func(key string, value Value)) *Cache {
	return &Cache{
		maxBytes:  maxBytes,
		ll:        list.New(),
		items:     make(map[string]*list.Element),
		OnEvicted: onEvicted,
	}
}

// Get looks up a key and marks it as most recently used
func (c *Cache) Get(key string) (value Value, ok bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	ele, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.ll.MoveToBack(ele)
	return ele.Value.(*entry).value, true
}

// Add inserts or replaces a value. Values larger than the whole budget are not stored.
func (c *Cache) Add(key string, value Value) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	size := int64(len(key)) + int64(value.Len())
	if c.maxBytes != 0 && size > c.maxBytes {
		logger.Debugf("[lru] skip oversized entry: key_len=%d size=%d budget=%d", len(key), size, c.maxBytes)
		return
	}

	if ele, ok := c.items[key]; ok {
		c.ll.MoveToBack(ele)
		kv := ele.Value.(*entry)
		c.nbytes += int64(value.Len()) - int64(kv.value.Len())
		kv.value = value
	} else {
		c.items[key] = c.ll.PushBack(&entry{key, value})
		c.nbytes += size
	}

	for c.maxBytes != 0 && c.nbytes > c.maxBytes {
		c.removeOldest()
	}
}

// Len returns the number of items in the cache
func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.ll.Len()
}

// Stats returns the current counters
func (c *Cache) Stats() Stats {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return Stats{Entries: c.ll.Len(), Bytes: c.nbytes, Hits: c.hits, Misses: c.misses}
}

// removeOldest evicts the least recently used item. Caller holds the mutex.
func (c *Cache) removeOldest() {
	ele := c.ll.Front()
	if ele == nil {
		return
	}
	c.ll.Remove(ele)
	kv := ele.Value.(*entry)
	delete(c.items, kv.key)
	c.nbytes -= int64(len(kv.key)) + int64(kv.value.Len())

	if c.OnEvicted != nil {
		c.OnEvicted(kv.key, kv.value)
	}
}

// Clear empties the cache. Counters are kept.
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.ll = list.New()
	c.items = make(map[string]*list.Element)
	c.nbytes = 0
}

// Delete removes a key from the cache
func (c *Cache) Delete(key string) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	ele, ok := c.items[key]
	if !ok {
		return false
	}
	c.ll.Remove(ele)
	kv := ele.Value.(*entry)
	delete(c.items, key)
	c.nbytes -= int64(len(key)) + int64(kv.value.Len())

	if c.OnEvicted != nil {
		c.OnEvicted(key, kv.value)
	}
	return true
}
