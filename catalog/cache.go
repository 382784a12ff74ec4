package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/summit/dataset"
	"github.com/katalvlaran/summit/options"
)

// Key identifies what a cached table was built for.
type Key struct {
	Session  string
	Options  options.Options
	Checksum uint64
}

// CacheStats counts cache activity.
type CacheStats struct {
	Hits   int
	Builds int
}

// Cache memoises the catalogs of a single generation session. It is owned
// by that session and refuses keys naming any other session; within the
// session a table is reused only while the options and the dataset are
// unchanged.
type Cache struct {
	session string

	mu        sync.Mutex
	itemsKey  Key
	items     *ItemTable
	locsKey   Key
	locations *LocationTable
	stats     CacheStats
}

// NewCache returns an empty cache bound to session.
func NewCache(session string) *Cache {
	return &Cache{session: session}
}

// Session returns the owning session id.
func (c *Cache) Session() string { return c.session }

// KeyFor returns the cache key for d and cfg in this cache's session.
func (c *Cache) KeyFor(d dataset.Dataset, cfg options.Config) Key {
	return Key{Session: c.session, Options: cfg.Options, Checksum: d.Checksum()}
}

// Items returns the item table for key, building it from d and cfg when
// nothing matching is cached.
func (c *Cache) Items(key Key, d dataset.Dataset, cfg options.Config) (ItemTable, error) {
	if err := c.check(key, d, cfg); err != nil {
		return ItemTable{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.items != nil && c.itemsKey == key {
		c.stats.Hits++
		return *c.items, nil
	}
	t := BuildItems(d.Rows, d.Topology, cfg)
	c.items, c.itemsKey = &t, key
	c.stats.Builds++

	return t, nil
}

// Locations returns the location table for key, building it from d and
// cfg when nothing matching is cached.
func (c *Cache) Locations(key Key, d dataset.Dataset, cfg options.Config) (LocationTable, error) {
	if err := c.check(key, d, cfg); err != nil {
		return LocationTable{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.locations != nil && c.locsKey == key {
		c.stats.Hits++
		return *c.locations, nil
	}
	t := BuildLocations(d.Rows, d.Topology, cfg)
	c.locations, c.locsKey = &t, key
	c.stats.Builds++

	return t, nil
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}

// ErrKeyMismatch indicates a key that does not describe the dataset and
// config passed alongside it.
var ErrKeyMismatch = errors.New("catalog: cache key does not match inputs")

func (c *Cache) check(key Key, d dataset.Dataset, cfg options.Config) error {
	if key.Session != c.session {
		return fmt.Errorf("%w: cache %q, key %q", ErrForeignSession, c.session, key.Session)
	}
	if key.Options != cfg.Options {
		return fmt.Errorf("%w: options %+v, config %+v", ErrKeyMismatch, key.Options, cfg.Options)
	}
	if key.Checksum != d.Checksum() {
		return fmt.Errorf("%w: dataset checksum %x", ErrKeyMismatch, key.Checksum)
	}

	return nil
}
