package playlists

import "github.com/horusvfx/playlist-api/internal/models"

// CreateParams holds the caller-supplied fields for a new playlist
type CreateParams struct {
	Name        string
	CreatedBy   string
	Description string
	Type        string
}

// UpdateFields is the allow-list of fields the generic update path may
// change. Clips, tracks and metadata only move through the clip engine.
type UpdateFields struct {
	Name        *string
	Description *string
	Status      *string
	Settings    *models.Settings
}

// Service manages playlist entities over the cache/store pair
type Service interface {
	Create(params CreateParams) (*models.Playlist, error)
	Get(id string) (*models.Playlist, error)
	List() ([]*models.Playlist, error)
	Update(id string, fields UpdateFields) (*models.Playlist, error)
	Delete(id string) error
	Duplicate(id string, newName string) (*models.Playlist, error)
	Refresh() error
}
