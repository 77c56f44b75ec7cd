package pipeline

import "github.com/correlaid/geomap/internal/model"

// Cache maps a case-insensitive "place|country" key to a previously resolved
// coordinate. It lives for one pipeline run and is never persisted. Only
// successful resolutions are stored, so an unmatched key is retried when a
// later record shares it.
type Cache struct {
	coords map[string]model.Coordinate
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{coords: make(map[string]model.Coordinate)}
}

// Get returns the cached coordinate for key, if any.
func (c *Cache) Get(key string) (model.Coordinate, bool) {
	coord, ok := c.coords[key]
	return coord, ok
}

// Put stores the coordinate for key. A key holds at most one coordinate for
// the run; later puts for the same key are not expected and overwrite.
func (c *Cache) Put(key string, coord model.Coordinate) {
	c.coords[key] = coord
}

// Len returns the number of distinct resolved keys.
func (c *Cache) Len() int {
	return len(c.coords)
}
