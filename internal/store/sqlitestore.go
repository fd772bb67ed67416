package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/horusvfx/playlist-api/internal/models"
	apperrors "github.com/horusvfx/playlist-api/pkg/errors"
)

// playlistDocument is the single-row document table. The whole
// collection is serialized into Payload; the document contract is the
// same as the file backend, the transaction supplies the atomicity.
type playlistDocument struct {
	ID        uint      `gorm:"primaryKey"`
	Scope     string    `gorm:"uniqueIndex;not null;size:100"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the document model
func (playlistDocument) TableName() string {
	return "playlist_documents"
}

// defaultScope keys the one collection this process owns
const defaultScope = "default"

// SQLiteStore persists the collection as one document row in SQLite
type SQLiteStore struct {
	db    *gorm.DB
	scope string
}

// NewSQLiteStore opens (creating if needed) the database at dbPath
func NewSQLiteStore(dbPath string, logQueries bool) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperrors.PersistenceError("open", err).WithDetail("path", dbPath)
		}
	}

	logLevel := logger.Error
	if logQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, apperrors.PersistenceError("open", err).WithDetail("path", dbPath)
	}

	if err := db.AutoMigrate(&playlistDocument{}); err != nil {
		return nil, apperrors.PersistenceError("migrate", err).WithDetail("path", dbPath)
	}

	return &SQLiteStore{db: db, scope: defaultScope}, nil
}

// LoadAll reads the document row for this scope. A missing row or an
// unparseable payload yields an empty collection.
func (s *SQLiteStore) LoadAll() (*models.Collection, error) {
	var doc playlistDocument
	err := s.db.Where("scope = ?", s.scope).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewCollection(), nil
		}
		return nil, apperrors.PersistenceError("read", err).WithDetail("scope", s.scope)
	}

	var collection models.Collection
	if err := json.Unmarshal(doc.Payload, &collection); err != nil {
		log.Warn("playlist document payload is corrupt, starting from an empty collection", "scope", s.scope, "err", err)
		return models.NewCollection(), nil
	}

	collection.Normalize()
	return &collection, nil
}

// SaveAll upserts the document row inside a transaction
func (s *SQLiteStore) SaveAll(collection *models.Collection) error {
	payload, err := json.Marshal(collection)
	if err != nil {
		return apperrors.PersistenceError("serialize", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var doc playlistDocument
		findErr := tx.Where("scope = ?", s.scope).First(&doc).Error
		if findErr != nil {
			if !errors.Is(findErr, gorm.ErrRecordNotFound) {
				return findErr
			}
			doc = playlistDocument{Scope: s.scope, Payload: payload, UpdatedAt: time.Now().UTC()}
			return tx.Create(&doc).Error
		}

		doc.Payload = payload
		doc.UpdatedAt = time.Now().UTC()
		return tx.Save(&doc).Error
	})
	if err != nil {
		return apperrors.PersistenceError("write", err).WithDetail("scope", s.scope)
	}

	return nil
}

// Close closes the underlying database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
