package playlists

import (
	"sync"
	"time"

	"github.com/horusvfx/playlist-api/internal/models"
	"github.com/horusvfx/playlist-api/internal/store"
)

// CollectionCache owns the in-memory copy of the persisted collection.
// It is lazily populated on first access and invalidated explicitly.
// Every mutation is write-through: the change is applied to a clone,
// the whole collection is saved, and only a successful save publishes
// the clone as the new cached state. A failed save therefore rolls the
// mutation back for free and cache and store cannot diverge.
type CollectionCache struct {
	store      store.DocumentStore
	mu         sync.Mutex
	collection *models.Collection // nil until first load
}

// NewCollectionCache creates a cache backed by the given store
func NewCollectionCache(documentStore store.DocumentStore) *CollectionCache {
	return &CollectionCache{store: documentStore}
}

// Read runs fn against the cached collection, loading it first if
// needed. fn must not retain or mutate the collection.
func (c *CollectionCache) Read(fn func(collection *models.Collection) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoadedLocked(); err != nil {
		return err
	}
	return fn(c.collection)
}

// Mutate applies fn to a clone of the cached collection, stamps the
// document's last_updated and persists the whole clone. The cached
// state only advances if the save succeeds.
func (c *CollectionCache) Mutate(fn func(collection *models.Collection) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoadedLocked(); err != nil {
		return err
	}

	working := c.collection.Clone()
	if err := fn(working); err != nil {
		return err
	}
	working.LastUpdated = time.Now().UTC()

	if err := c.store.SaveAll(working); err != nil {
		return err
	}

	c.collection = working
	return nil
}

// Invalidate clears the cached collection, forcing the next access to
// reload from the store.
func (c *CollectionCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.collection = nil
}

func (c *CollectionCache) ensureLoadedLocked() error {
	if c.collection != nil {
		return nil
	}
	collection, err := c.store.LoadAll()
	if err != nil {
		return err
	}
	c.collection = collection
	return nil
}
