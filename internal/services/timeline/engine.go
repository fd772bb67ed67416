package timeline

import (
	"time"

	"github.com/horusvfx/playlist-api/internal/models"
	"github.com/horusvfx/playlist-api/internal/services/playlists"
	"github.com/horusvfx/playlist-api/pkg/config"
	apperrors "github.com/horusvfx/playlist-api/pkg/errors"
)

// AddClipParams holds the media reference for a new clip
type AddClipParams struct {
	MediaID    string
	Sequence   string
	Shot       string
	Department string
	Version    string
	FilePath   string
	StartFrame int
	EndFrame   int
	Duration   int
	TrackID    int
	Notes      string
}

// ClipUpdateFields is the allow-list for updating an existing clip.
// Changing the frame range or duration shifts every later clip, so
// those updates re-trigger position reindexing.
type ClipUpdateFields struct {
	Version    *string
	FilePath   *string
	StartFrame *int
	EndFrame   *int
	Duration   *int
	Notes      *string
}

// Service is the clip/timeline engine: append, removal and reordering
// of clips within a playlist, with gapless position recomputation and
// aggregate maintenance after every mutation.
type Service interface {
	AddClip(playlistID string, params AddClipParams) (*models.Clip, error)
	RemoveClip(playlistID string, clipID string) error
	ReorderClips(playlistID string, orderedClipIDs []string) (*models.Playlist, error)
	UpdateClip(playlistID string, clipID string, fields ClipUpdateFields) (*models.Clip, error)
}

// ServiceImpl implements the Service interface over the shared
// collection cache, so clip mutations ride the same write-through
// rollback path as playlist CRUD.
type ServiceImpl struct {
	cache    *playlists.CollectionCache
	defaults config.PlaylistsConfig
}

// NewService creates a new clip engine
func NewService(cache *playlists.CollectionCache, defaults config.PlaylistsConfig) Service {
	return &ServiceImpl{
		cache:    cache,
		defaults: defaults,
	}
}

// AddClip appends a clip to the playlist. The new clip starts where
// the last one ends (sequential, gapless layout) and is assigned to
// the requested track, or the playlist's first track when unspecified.
func (s *ServiceImpl) AddClip(playlistID string, params AddClipParams) (*models.Clip, error) {
	if params.MediaID == "" && params.FilePath == "" {
		return nil, apperrors.MissingFieldError("media_id")
	}
	if params.Duration < 0 {
		return nil, apperrors.ValidationError("duration", "must not be negative")
	}

	var added *models.Clip
	err := s.cache.Mutate(func(collection *models.Collection) error {
		playlist := collection.Find(playlistID)
		if playlist == nil {
			return apperrors.NotFound("playlist", playlistID)
		}

		clip := models.Clip{
			ClipID:     models.NewClipID(),
			MediaID:    params.MediaID,
			Sequence:   params.Sequence,
			Shot:       params.Shot,
			Department: params.Department,
			Version:    params.Version,
			FilePath:   params.FilePath,
			StartFrame: params.StartFrame,
			EndFrame:   params.EndFrame,
			Duration:   params.Duration,
			TrackID:    params.TrackID,
			Notes:      params.Notes,
			AddedAt:    time.Now().UTC(),
		}
		if clip.Version == "" {
			clip.Version = "v001"
		}
		if clip.DurationFrames() == 0 {
			clip.Duration = s.defaults.DefaultClipDuration
		}
		if clip.TrackID == 0 && len(playlist.Tracks) > 0 {
			clip.TrackID = playlist.Tracks[0].TrackID
		} else if clip.TrackID != 0 && playlist.FindTrack(clip.TrackID) == nil {
			return apperrors.ValidationError("track_id", "track does not exist in playlist")
		}

		// append at the end of the current layout
		clip.Position = 0
		for i := range playlist.Clips {
			clip.Position += playlist.Clips[i].DurationFrames()
		}

		playlist.Clips = append(playlist.Clips, clip)
		playlist.Metadata = Recompute(playlist)
		playlist.Touch()

		added = &clip
		return nil
	})
	if err != nil {
		return nil, err
	}

	return added, nil
}

// RemoveClip deletes the clip and reindexes the remaining clips so the
// layout stays gapless. Reindexing runs unconditionally after removal.
func (s *ServiceImpl) RemoveClip(playlistID string, clipID string) error {
	return s.cache.Mutate(func(collection *models.Collection) error {
		playlist := collection.Find(playlistID)
		if playlist == nil {
			return apperrors.NotFound("playlist", playlistID)
		}

		idx := playlist.FindClip(clipID)
		if idx < 0 {
			return apperrors.NotFound("clip", clipID)
		}

		playlist.Clips = append(playlist.Clips[:idx], playlist.Clips[idx+1:]...)
		reindexPositions(playlist)
		playlist.Metadata = Recompute(playlist)
		playlist.Touch()
		return nil
	})
}

// ReorderClips rebuilds the clip sequence to match the requested id
// order. Existing clips omitted from the request keep their prior
// relative order at the end; unknown ids are ignored. Positions are
// recomputed afterwards.
func (s *ServiceImpl) ReorderClips(playlistID string, orderedClipIDs []string) (*models.Playlist, error) {
	var updated *models.Playlist
	err := s.cache.Mutate(func(collection *models.Collection) error {
		playlist := collection.Find(playlistID)
		if playlist == nil {
			return apperrors.NotFound("playlist", playlistID)
		}

		taken := make(map[string]bool, len(playlist.Clips))
		reordered := make([]models.Clip, 0, len(playlist.Clips))

		for _, id := range orderedClipIDs {
			if taken[id] {
				continue
			}
			if idx := playlist.FindClip(id); idx >= 0 {
				reordered = append(reordered, playlist.Clips[idx])
				taken[id] = true
			}
		}

		// never drop a clip: anything not named keeps its old relative order
		for i := range playlist.Clips {
			if !taken[playlist.Clips[i].ClipID] {
				reordered = append(reordered, playlist.Clips[i])
			}
		}

		playlist.Clips = reordered
		reindexPositions(playlist)
		playlist.Metadata = Recompute(playlist)
		playlist.Touch()

		updated = playlist.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdateClip changes allow-listed clip fields. Duration-affecting
// changes shift every later offset, so they reindex the whole layout.
func (s *ServiceImpl) UpdateClip(playlistID string, clipID string, fields ClipUpdateFields) (*models.Clip, error) {
	if fields.Duration != nil && *fields.Duration < 0 {
		return nil, apperrors.ValidationError("duration", "must not be negative")
	}

	var updated *models.Clip
	err := s.cache.Mutate(func(collection *models.Collection) error {
		playlist := collection.Find(playlistID)
		if playlist == nil {
			return apperrors.NotFound("playlist", playlistID)
		}

		idx := playlist.FindClip(clipID)
		if idx < 0 {
			return apperrors.NotFound("clip", clipID)
		}
		clip := &playlist.Clips[idx]

		durationChanged := false
		if fields.Version != nil {
			clip.Version = *fields.Version
		}
		if fields.FilePath != nil {
			clip.FilePath = *fields.FilePath
		}
		if fields.Notes != nil {
			clip.Notes = *fields.Notes
		}
		if fields.StartFrame != nil {
			clip.StartFrame = *fields.StartFrame
			durationChanged = true
		}
		if fields.EndFrame != nil {
			clip.EndFrame = *fields.EndFrame
			durationChanged = true
		}
		if fields.Duration != nil {
			clip.Duration = *fields.Duration
			durationChanged = true
		}

		if durationChanged {
			reindexPositions(playlist)
		}
		playlist.Metadata = Recompute(playlist)
		playlist.Touch()

		dup := playlist.Clips[playlist.FindClip(clipID)]
		updated = &dup
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// reindexPositions restores the gapless invariant: position[0] = 0 and
// position[i] = position[i-1] + duration[i-1].
func reindexPositions(p *models.Playlist) {
	offset := 0
	for i := range p.Clips {
		p.Clips[i].Position = offset
		offset += p.Clips[i].DurationFrames()
	}
}
