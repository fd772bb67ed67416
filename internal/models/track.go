package models

// Track is a named lane used to visually group clips at render time.
// Tracks are independent of clips; assignment lives on the clip side
// as a track_id set when the clip is added.
type Track struct {
	TrackID int    `json:"track_id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Height  int    `json:"height"`
	Locked  bool   `json:"locked"`
	Muted   bool   `json:"muted"`
	Solo    bool   `json:"solo"`
	Color   string `json:"color"`
}

// DefaultTrack returns the track every new playlist starts with
func DefaultTrack(height int) Track {
	if height <= 0 {
		height = 60
	}
	return Track{
		TrackID: 1,
		Name:    "Video Track 1",
		Type:    "video",
		Height:  height,
		Color:   "#2d2d2d",
	}
}
