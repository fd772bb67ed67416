package types

import (
	"github.com/horusvfx/playlist-api/internal/models"
	"github.com/horusvfx/playlist-api/internal/services/timeline"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// PlaylistsResponse for playlist lists
type PlaylistsResponse struct {
	BaseResponse
	Playlists []*models.Playlist `json:"playlists"`
	Count     int                `json:"count"`
}

// SinglePlaylistResponse for getting a single playlist
type SinglePlaylistResponse struct {
	BaseResponse
	Playlist *models.Playlist `json:"playlist"`
}

// SingleClipResponse for clip create/update results
type SingleClipResponse struct {
	BaseResponse
	PlaylistID string       `json:"playlist_id"`
	Clip       *models.Clip `json:"clip"`
}

// TimelineResponse for the computed lane layout
type TimelineResponse struct {
	BaseResponse
	Timeline *timeline.View `json:"timeline"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
