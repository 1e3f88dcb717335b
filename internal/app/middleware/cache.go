package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// In-memory TTL cache for hot read-only GET endpoints (areas catalog,
// announcements). Entries are small JSON bodies; eviction is lazy.
type cacheEntry struct {
	content    []byte
	expiration time.Time
}

type memoryCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

var cache = &memoryCache{items: make(map[string]cacheEntry)}

func cacheKey(c *gin.Context) string {
	key := c.Request.URL.Path + "?" + c.Request.URL.RawQuery
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}

type cachedWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachedWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache serves GET responses from memory for the given TTL. Only 200
// responses are stored.
func Cache(expiration time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)

		cache.RLock()
		entry, found := cache.items[key]
		cache.RUnlock()

		if found && entry.expiration.After(time.Now()) {
			c.Data(http.StatusOK, "application/json; charset=utf-8", entry.content)
			c.Abort()
			return
		}

		writer := &cachedWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if c.Writer.Status() == http.StatusOK {
			cache.Lock()
			cache.items[key] = cacheEntry{
				content:    writer.body.Bytes(),
				expiration: time.Now().Add(expiration),
			}
			cache.Unlock()
		}
	}
}

// InvalidateCache drops every cached entry. Write endpoints of cached
// resources call this after a successful mutation.
func InvalidateCache() {
	cache.Lock()
	cache.items = make(map[string]cacheEntry)
	cache.Unlock()
}
