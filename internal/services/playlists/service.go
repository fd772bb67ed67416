package playlists

import (
	"strings"
	"time"

	"github.com/horusvfx/playlist-api/internal/models"
	"github.com/horusvfx/playlist-api/pkg/config"
	apperrors "github.com/horusvfx/playlist-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	cache    *CollectionCache
	defaults config.PlaylistsConfig
}

// NewService creates a new playlist service
func NewService(cache *CollectionCache, defaults config.PlaylistsConfig) Service {
	return &ServiceImpl{
		cache:    cache,
		defaults: defaults,
	}
}

// Create adds a new playlist with generated id, draft status, one
// default track and zeroed metadata. The playlist does not exist
// unless the write-through save succeeds.
func (s *ServiceImpl) Create(params CreateParams) (*models.Playlist, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, apperrors.MissingFieldError("name")
	}

	createdBy := params.CreatedBy
	if createdBy == "" {
		createdBy = "user"
	}
	playlistType := params.Type
	if playlistType == "" {
		playlistType = "user_created"
	}

	now := time.Now().UTC()
	playlist := &models.Playlist{
		ID:          models.NewPlaylistID(),
		Name:        name,
		ProjectID:   s.defaults.ProjectID,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
		Description: params.Description,
		Type:        playlistType,
		Status:      models.PlaylistStatusDraft,
		Settings: models.Settings{
			AutoPlay:     true,
			Loop:         false,
			FrameRate:    s.defaults.DefaultFrameRate,
			ShowTimecode: true,
			TrackHeight:  s.defaults.DefaultTrackHeight,
			TimelineZoom: 1.0,
		},
		Clips:    []models.Clip{},
		Tracks:   []models.Track{models.DefaultTrack(s.defaults.DefaultTrackHeight)},
		Metadata: models.Metadata{Departments: []string{}},
	}

	err := s.cache.Mutate(func(collection *models.Collection) error {
		// the cache keeps its own copy so the returned playlist cannot
		// alias cached state
		collection.Playlists = append(collection.Playlists, playlist.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return playlist, nil
}

// Get returns the playlist with the given id. Linear scan over the
// cached collection; fine at the tens-to-hundreds scale this serves.
func (s *ServiceImpl) Get(id string) (*models.Playlist, error) {
	var found *models.Playlist
	err := s.cache.Read(func(collection *models.Collection) error {
		if p := collection.Find(id); p != nil {
			found = p.Clone()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.NotFound("playlist", id)
	}
	return found, nil
}

// List returns every playlist in the collection
func (s *ServiceImpl) List() ([]*models.Playlist, error) {
	var out []*models.Playlist
	err := s.cache.Read(func(collection *models.Collection) error {
		out = make([]*models.Playlist, len(collection.Playlists))
		for i, p := range collection.Playlists {
			out[i] = p.Clone()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update changes allow-listed fields only and bumps updated_at
func (s *ServiceImpl) Update(id string, fields UpdateFields) (*models.Playlist, error) {
	if fields.Name != nil && strings.TrimSpace(*fields.Name) == "" {
		return nil, apperrors.ValidationError("name", "must not be empty")
	}
	if fields.Status != nil && !models.IsValidStatus(*fields.Status) {
		return nil, apperrors.ValidationError("status", "must be one of draft, active, locked")
	}

	var updated *models.Playlist
	err := s.cache.Mutate(func(collection *models.Collection) error {
		playlist := collection.Find(id)
		if playlist == nil {
			return apperrors.NotFound("playlist", id)
		}

		if fields.Name != nil {
			playlist.Name = strings.TrimSpace(*fields.Name)
		}
		if fields.Description != nil {
			playlist.Description = *fields.Description
		}
		if fields.Status != nil {
			playlist.Status = *fields.Status
		}
		if fields.Settings != nil {
			playlist.Settings = *fields.Settings
		}
		playlist.Touch()

		updated = playlist.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the playlist. External references held by other
// subsystems are theirs to reconcile.
func (s *ServiceImpl) Delete(id string) error {
	return s.cache.Mutate(func(collection *models.Collection) error {
		if !collection.Remove(id) {
			return apperrors.NotFound("playlist", id)
		}
		return nil
	})
}

// Duplicate deep-copies a playlist under a fresh id. The copy starts
// over as a draft with new timestamps.
func (s *ServiceImpl) Duplicate(id string, newName string) (*models.Playlist, error) {
	var dup *models.Playlist
	err := s.cache.Mutate(func(collection *models.Collection) error {
		source := collection.Find(id)
		if source == nil {
			return apperrors.NotFound("playlist", id)
		}

		dup = source.Clone()
		dup.ID = models.NewPlaylistID()
		name := strings.TrimSpace(newName)
		if name == "" {
			name = source.Name + " Copy"
		}
		dup.Name = name
		dup.Status = models.PlaylistStatusDraft
		now := time.Now().UTC()
		dup.CreatedAt = now
		dup.UpdatedAt = now

		collection.Playlists = append(collection.Playlists, dup.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dup, nil
}

// Refresh invalidates the cache so the next access reloads from the store
func (s *ServiceImpl) Refresh() error {
	s.cache.Invalidate()
	return s.cache.Read(func(*models.Collection) error { return nil })
}

// Cache exposes the underlying collection cache for the clip engine,
// which shares the same write-through path.
func (s *ServiceImpl) Cache() *CollectionCache {
	return s.cache
}
