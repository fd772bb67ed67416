package models

import "time"

// Clip references one media version placed at a frame offset within a
// playlist's timeline. Position is playlist-wide: clip i starts where
// clip i-1 ends, with no gaps and no overlaps.
type Clip struct {
	ClipID     string    `json:"clip_id"`
	MediaID    string    `json:"media_id"`
	Sequence   string    `json:"sequence"`
	Shot       string    `json:"shot"`
	Department string    `json:"department"`
	Version    string    `json:"version"`
	FilePath   string    `json:"file_path"`
	StartFrame int       `json:"start_frame"`
	EndFrame   int       `json:"end_frame"`
	Duration   int       `json:"duration"`
	Position   int       `json:"position"`
	TrackID    int       `json:"track_id"`
	Notes      string    `json:"notes,omitempty"`
	AddedAt    time.Time `json:"added_at"`
}

// DurationFrames returns the clip length in frames. The explicit
// duration wins; otherwise it is derived from the inclusive frame range.
func (c *Clip) DurationFrames() int {
	if c.Duration > 0 {
		return c.Duration
	}
	if c.StartFrame > 0 && c.EndFrame >= c.StartFrame {
		return c.EndFrame - c.StartFrame + 1
	}
	return 0
}

// EndPosition returns the first frame offset past this clip
func (c *Clip) EndPosition() int {
	return c.Position + c.DurationFrames()
}
