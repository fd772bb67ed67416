package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"

	"github.com/horusvfx/playlist-api/internal/models"
	apperrors "github.com/horusvfx/playlist-api/pkg/errors"
)

// FileStore persists the collection as a single JSON document.
// Writes go to a temp file in the same directory followed by a rename,
// so a failed write never corrupts the existing document. An exclusive
// flock is held across each load/save to keep concurrent processes
// from interleaving whole-document writes.
type FileStore struct {
	path        string
	lockTimeout time.Duration
}

// NewFileStore creates a file-backed document store at path
func NewFileStore(path string, lockTimeout time.Duration) *FileStore {
	if lockTimeout <= 0 {
		lockTimeout = 5 * time.Second
	}
	return &FileStore{path: path, lockTimeout: lockTimeout}
}

// LoadAll reads the whole collection. A missing or unparseable
// document yields an empty collection; read failures are reported as
// persistence errors.
func (s *FileStore) LoadAll() (*models.Collection, error) {
	unlock, err := s.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewCollection(), nil
		}
		return nil, apperrors.PersistenceError("read", err).WithDetail("path", s.path)
	}

	var collection models.Collection
	if err := json.Unmarshal(data, &collection); err != nil {
		log.Warn("playlist document is corrupt, starting from an empty collection", "path", s.path, "err", err)
		return models.NewCollection(), nil
	}

	collection.Normalize()
	return &collection, nil
}

// SaveAll writes the whole collection atomically
func (s *FileStore) SaveAll(collection *models.Collection) error {
	unlock, err := s.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.PersistenceError("write", err).WithDetail("path", s.path)
	}

	// last_updated belongs to the document and is stamped by the
	// mutation path, not here: re-saving a loaded collection must
	// reproduce the persisted bytes exactly
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return apperrors.PersistenceError("serialize", err)
	}

	tmp, err := os.CreateTemp(dir, ".playlists-*.json")
	if err != nil {
		return apperrors.PersistenceError("write", err).WithDetail("path", s.path)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return apperrors.PersistenceError("write", err).WithDetail("path", s.path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return apperrors.PersistenceError("write", err).WithDetail("path", s.path)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return apperrors.PersistenceError("write", err).WithDetail("path", s.path)
	}

	return nil
}

// Close releases nothing for the file backend; the lock is per-operation
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) acquireLock() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, apperrors.PersistenceError("lock", err).WithDetail("path", s.path)
	}

	lock := flock.New(s.path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	ok, err := lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return nil, apperrors.PersistenceError("lock", err).WithDetail("path", s.path)
	}
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodePersistence, "timed out waiting for document lock").
			WithDetail("path", s.path)
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			log.Warn("failed to release document lock", "path", s.path, "err", err)
		}
	}, nil
}
