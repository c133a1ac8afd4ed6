package twitterclient

import (
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

// Cache maps a request key to a previously fetched response body. Only
// single-record lookups are cached, paginated list fetches always hit the
// network.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

////////////////////////////////////////////////////////////////////////////////

// lruCache is the default Cache, a fixed-capacity LRU over response bodies
type lruCache struct {
	entries *lru.Cache[string, []byte]
}

func newLruCache(size int) *lruCache {
	entries, err := lru.New[string, []byte](size)
	if err != nil {
		panic(err)
	}
	return &lruCache{entries: entries}
}

// NewLruCache builds an LRU response cache with the given capacity
func NewLruCache(size int) Cache {
	return newLruCache(size)
}

func (c *lruCache) Get(key string) ([]byte, bool) {
	return c.entries.Get(key)
}

func (c *lruCache) Set(key string, value []byte) {
	c.entries.Add(key, value)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) cacheGet(key string) ([]byte, bool) {
	c.mutex.RLock()
	cache := c.cache
	c.mutex.RUnlock()

	if cache == nil {
		return nil, false
	}
	body, ok := cache.Get(key)
	if ok {
		log.WithField("key", key).Debugln("[Cache] hit")
	}
	return body, ok
}

func (c *Client) cacheSet(key string, body []byte) {
	c.mutex.RLock()
	cache := c.cache
	c.mutex.RUnlock()

	if cache == nil {
		return
	}
	cache.Set(key, body)
}
