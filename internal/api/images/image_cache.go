package images

import (
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

// Cache is the in-process photo cache. Entries never expire individually;
// the only invalidation is a full Clear, triggered when the browsing context
// changes (for example the user switches states).
type Cache struct {
	store *gocache.Cache
}

func NewCache() *Cache {
	return &Cache{store: gocache.New(gocache.NoExpiration, 0)}
}

func cacheKey(kind, subject string, count int) string {
	return fmt.Sprintf("%s_%s_%d", kind, subject, count)
}

func (c *Cache) Get(key string) ([]types.ImageRecord, bool) {
	v, found := c.store.Get(key)
	if !found {
		return nil, false
	}
	records, ok := v.([]types.ImageRecord)
	return records, ok
}

func (c *Cache) Set(key string, records []types.ImageRecord) {
	c.store.Set(key, records, gocache.NoExpiration)
}

// Clear flushes everything. Full clear only, no selective invalidation.
func (c *Cache) Clear() {
	c.store.Flush()
}
