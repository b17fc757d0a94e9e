package codec

import (
	"golang.org/x/sync/singleflight"

	"github.com/AdrianWangs/go-buffer/pkg/lru"
)

// encoded is a cache entry; its size is the encoded length
type encoded []byte

func (e encoded) Len() int { return len(e) }

// Cached memoizes Encode results of an inner codec in a byte-bounded LRU.
// Concurrent misses on the same key encode once. It is safe for concurrent
// use when the inner codec is.
type Cached struct {
	inner  Codec
	cache  *lru.Cache
	loader singleflight.Group
}

// NewCached wraps inner with an encode cache limited to maxBytes (0 means unbounded)
func NewCached(inner Codec, maxBytes int64) *Cached {
	if inner == nil {
		inner = Standard
	}
	return &Cached{
		inner: inner,
		cache: lru.New(maxBytes, nil),
	}
}

// Encode implements Codec. The returned slice is never shared with the cache.
func (c *Cached) Encode(text, charset string) ([]byte, error) {
	name, err := Normalize(charset)
	if err != nil {
		return nil, err
	}
	key := name + "\x00" + text

	if v, ok := c.cache.Get(key); ok {
		return clone(v.(encoded)), nil
	}

	v, err, _ := c.loader.Do(key, func() (interface{}, error) {
		out, err := c.inner.Encode(text, name)
		if err != nil {
			return nil, err
		}
		c.cache.Add(key, encoded(out))
		return encoded(out), nil
	})
	if err != nil {
		return nil, err
	}
	return clone(v.(encoded)), nil
}

// Decode implements Codec; decoding is not cached
func (c *Cached) Decode(p []byte, charset string) (string, error) {
	return c.inner.Decode(p, charset)
}

// Stats returns the cache counters
func (c *Cached) Stats() lru.Stats {
	return c.cache.Stats()
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
