package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Playlist status constants
const (
	PlaylistStatusDraft  = "draft"  // Newly created, still being assembled
	PlaylistStatusActive = "active" // In use for review sessions
	PlaylistStatusLocked = "locked" // Frozen, e.g. after client sign-off
)

// Playlist is a named, ordered collection of clips plus display tracks
// and derived metadata. The ID is generated once and never changes.
type Playlist struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	ProjectID   string    `json:"project_id"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Settings    Settings  `json:"settings"`
	Clips       []Clip    `json:"clips"`
	Tracks      []Track   `json:"tracks"`
	Metadata    Metadata  `json:"metadata"`
}

// Settings holds per-playlist playback and display preferences
type Settings struct {
	AutoPlay     bool    `json:"auto_play"`
	Loop         bool    `json:"loop"`
	FrameRate    int     `json:"frame_rate"`
	ShowTimecode bool    `json:"show_timecode"`
	TrackHeight  int     `json:"track_height"`
	TimelineZoom float64 `json:"timeline_zoom"`
}

// Metadata holds summary fields derived from the clip sequence.
// It is recomputed after every clip mutation, never authored directly.
type Metadata struct {
	ClipCount   int      `json:"clip_count"`
	TotalFrames int      `json:"total_frames"`
	Departments []string `json:"departments"`
}

// NewPlaylistID generates a fresh playlist id, e.g. "playlist_3fa85f64"
func NewPlaylistID() string {
	return "playlist_" + shortUUID()
}

// NewClipID generates a fresh clip id, e.g. "clip_9b2e1c07"
func NewClipID() string {
	return "clip_" + shortUUID()
}

func shortUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// IsValidStatus reports whether s is one of the known playlist statuses
func IsValidStatus(s string) bool {
	switch s {
	case PlaylistStatusDraft, PlaylistStatusActive, PlaylistStatusLocked:
		return true
	}
	return false
}

// Touch advances the playlist's updated_at timestamp
func (p *Playlist) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

// IsLocked returns true if the playlist has been frozen
func (p *Playlist) IsLocked() bool {
	return p.Status == PlaylistStatusLocked
}

// FindClip returns the index of the clip with the given id, or -1
func (p *Playlist) FindClip(clipID string) int {
	for i := range p.Clips {
		if p.Clips[i].ClipID == clipID {
			return i
		}
	}
	return -1
}

// FindTrack returns the track with the given id, or nil
func (p *Playlist) FindTrack(trackID int) *Track {
	for i := range p.Tracks {
		if p.Tracks[i].TrackID == trackID {
			return &p.Tracks[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the playlist
func (p *Playlist) Clone() *Playlist {
	dup := *p
	dup.Clips = make([]Clip, len(p.Clips))
	copy(dup.Clips, p.Clips)
	dup.Tracks = make([]Track, len(p.Tracks))
	copy(dup.Tracks, p.Tracks)
	if p.Metadata.Departments != nil {
		dup.Metadata.Departments = make([]string, len(p.Metadata.Departments))
		copy(dup.Metadata.Departments, p.Metadata.Departments)
	}
	return &dup
}

// Normalize fills zero values left behind by older documents so the
// rest of the code never has to re-check them. Called once at the
// store boundary on load.
func (p *Playlist) Normalize() {
	if p.Status == "" {
		p.Status = PlaylistStatusDraft
	}
	if p.Clips == nil {
		p.Clips = []Clip{}
	}
	if p.Tracks == nil {
		p.Tracks = []Track{}
	}
	if p.Metadata.Departments == nil {
		p.Metadata.Departments = []string{}
	}
	if p.Settings.FrameRate <= 0 {
		p.Settings.FrameRate = 24
	}
	if p.Settings.TimelineZoom <= 0 {
		p.Settings.TimelineZoom = 1.0
	}
}
