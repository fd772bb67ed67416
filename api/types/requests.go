package types

import (
	"encoding/json"

	"github.com/horusvfx/playlist-api/internal/models"
)

// CreatePlaylistRequest is the payload for creating a playlist
type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	CreatedBy   string `json:"created_by"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// UpdatePlaylistRequest is the payload for the generic update path.
// Only the allow-listed fields may be changed here; the raw fields
// below exist solely so the handler can reject attempts to smuggle
// engine-owned state through this path.
type UpdatePlaylistRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	Settings    *models.Settings `json:"settings"`

	// engine-owned fields, rejected if present
	ID       json.RawMessage `json:"_id"`
	Clips    json.RawMessage `json:"clips"`
	Tracks   json.RawMessage `json:"tracks"`
	Metadata json.RawMessage `json:"metadata"`
}

// DisallowedField names the first engine-owned field present in the
// request, or "" if the payload is clean.
func (r *UpdatePlaylistRequest) DisallowedField() string {
	switch {
	case r.ID != nil:
		return "_id"
	case r.Clips != nil:
		return "clips"
	case r.Tracks != nil:
		return "tracks"
	case r.Metadata != nil:
		return "metadata"
	}
	return ""
}

// DuplicatePlaylistRequest is the payload for duplicating a playlist
type DuplicatePlaylistRequest struct {
	Name string `json:"name"`
}

// AddClipRequest is the media reference payload for appending a clip
type AddClipRequest struct {
	MediaID    string `json:"media_id"`
	Sequence   string `json:"sequence"`
	Shot       string `json:"shot"`
	Department string `json:"department"`
	Version    string `json:"version"`
	FilePath   string `json:"file_path"`
	StartFrame int    `json:"start_frame"`
	EndFrame   int    `json:"end_frame"`
	Duration   int    `json:"duration"`
	TrackID    int    `json:"track_id"`
	Notes      string `json:"notes"`
}

// UpdateClipRequest is the allow-listed clip update payload
type UpdateClipRequest struct {
	Version    *string `json:"version"`
	FilePath   *string `json:"file_path"`
	StartFrame *int    `json:"start_frame"`
	EndFrame   *int    `json:"end_frame"`
	Duration   *int    `json:"duration"`
	Notes      *string `json:"notes"`
}

// ReorderClipsRequest is the payload for rebuilding clip order
type ReorderClipsRequest struct {
	ClipIDs []string `json:"clip_ids" binding:"required"`
}
