package store

import (
	"fmt"

	"github.com/horusvfx/playlist-api/internal/models"
	"github.com/horusvfx/playlist-api/pkg/config"
)

// DocumentStore reads and writes the playlist collection as one
// document. Implementations must make SaveAll atomic from the caller's
// perspective: a failed write leaves the previously persisted state
// intact. A missing or corrupt document loads as an empty collection;
// only real I/O failures surface as errors.
type DocumentStore interface {
	LoadAll() (*models.Collection, error)
	SaveAll(collection *models.Collection) error
	Close() error
}

// New builds the configured DocumentStore backend
func New(cfg config.StoreConfig) (DocumentStore, error) {
	switch cfg.Backend {
	case "file":
		return NewFileStore(cfg.Path, cfg.LockTimeout), nil
	case "sqlite":
		return NewSQLiteStore(cfg.Path, cfg.LogQueries)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Backend)
	}
}
