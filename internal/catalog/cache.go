package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"showcase/internal/domain"
)

var productsBucket = []byte("products")

// ErrNotCached is returned by Get when the key has no entry
var ErrNotCached = errors.New("not cached")

// Entry is a cached product list
type Entry struct {
	FetchedAt time.Time        `json:"fetched_at"`
	Products  []domain.Product `json:"products"`
}

// Cache keeps the last good product list of every source in a bolt database
type Cache struct {
	db *bolt.DB
}

// OpenCache opens or creates the cache database at path
func OpenCache(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(productsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Put stores products under key
func (c *Cache) Put(key string, products []domain.Product, fetchedAt time.Time) error {
	data, err := json.Marshal(Entry{FetchedAt: fetchedAt, Products: products})
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(productsBucket).Put([]byte(key), data)
	})
}

// Get returns the entry stored under key
func (c *Cache) Get(key string) (*Entry, error) {
	var entry Entry
	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(productsBucket).Get([]byte(key))
		if data == nil {
			return ErrNotCached
		}
		return json.Unmarshal(data, &entry)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Close closes the database
func (c *Cache) Close() error {
	return c.db.Close()
}

// CachedSource serves the cached list when the wrapped source fails
type CachedSource struct {
	source Source
	cache  *Cache
	now    func() time.Time
}

// NewCachedSource wraps source with cache
func NewCachedSource(source Source, cache *Cache) *CachedSource {
	return &CachedSource{source: source, cache: cache, now: time.Now}
}

// Key returns the wrapped source's key
func (s *CachedSource) Key() string {
	return s.source.Key()
}

// Fetch implements Source; staleness is reported through FetchEntry
func (s *CachedSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	products, _, _, err := s.FetchEntry(ctx)
	return products, err
}

// FetchEntry fetches from the wrapped source and records the result. On
// failure it falls back to the cache and reports the list as stale.
func (s *CachedSource) FetchEntry(ctx context.Context) ([]domain.Product, time.Time, bool, error) {
	products, err := s.source.Fetch(ctx)
	if err == nil {
		fetchedAt := s.now()
		if putErr := s.cache.Put(s.Key(), products, fetchedAt); putErr != nil {
			log.Printf("Failed to cache products for %s: %v", s.Key(), putErr)
		}
		return products, fetchedAt, false, nil
	}

	entry, cacheErr := s.cache.Get(s.Key())
	if cacheErr != nil {
		return nil, time.Time{}, false, err
	}
	log.Printf("Fetch from %s failed (%v), serving cache from %s", s.Key(), err, entry.FetchedAt.Format(time.RFC3339))
	return entry.Products, entry.FetchedAt, true, nil
}
