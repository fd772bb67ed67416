package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGeneration(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewPlaylistID()
		assert.True(t, strings.HasPrefix(id, "playlist_"))
		assert.Len(t, id, len("playlist_")+8)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	clipID := NewClipID()
	assert.True(t, strings.HasPrefix(clipID, "clip_"))
}

func TestClipDurationFrames(t *testing.T) {
	tests := []struct {
		name string
		clip Clip
		want int
	}{
		{"explicit duration", Clip{Duration: 120}, 120},
		{"derived from inclusive range", Clip{StartFrame: 1001, EndFrame: 1120}, 120},
		{"explicit wins over range", Clip{StartFrame: 1001, EndFrame: 1120, Duration: 90}, 90},
		{"no duration information", Clip{}, 0},
		{"inverted range", Clip{StartFrame: 1100, EndFrame: 1000}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.clip.DurationFrames())
		})
	}
}

func TestClipEndPosition(t *testing.T) {
	c := Clip{Position: 200, Duration: 150}
	assert.Equal(t, 350, c.EndPosition())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(PlaylistStatusDraft))
	assert.True(t, IsValidStatus(PlaylistStatusActive))
	assert.True(t, IsValidStatus(PlaylistStatusLocked))
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus(""))
}

func TestPlaylistClone(t *testing.T) {
	p := &Playlist{
		ID:   "playlist_aaaa1111",
		Name: "Dailies",
		Clips: []Clip{
			{ClipID: "clip_1", Duration: 100},
		},
		Tracks:   []Track{DefaultTrack(60)},
		Metadata: Metadata{ClipCount: 1, TotalFrames: 100, Departments: []string{"Lighting"}},
	}

	dup := p.Clone()
	dup.Name = "Dailies Copy"
	dup.Clips[0].Duration = 999
	dup.Metadata.Departments[0] = "Compositing"

	assert.Equal(t, "Dailies", p.Name)
	assert.Equal(t, 100, p.Clips[0].Duration)
	assert.Equal(t, "Lighting", p.Metadata.Departments[0])
}

func TestCollectionFindRemove(t *testing.T) {
	c := NewCollection()
	c.Playlists = append(c.Playlists,
		&Playlist{ID: "playlist_a"},
		&Playlist{ID: "playlist_b"},
	)

	require.NotNil(t, c.Find("playlist_b"))
	assert.Nil(t, c.Find("playlist_missing"))

	assert.True(t, c.Remove("playlist_a"))
	assert.False(t, c.Remove("playlist_a"))
	assert.Len(t, c.Playlists, 1)
	assert.Equal(t, "playlist_b", c.Playlists[0].ID)
}

func TestNormalizeFillsDefaults(t *testing.T) {
	p := &Playlist{ID: "playlist_x"}
	p.Normalize()

	assert.Equal(t, PlaylistStatusDraft, p.Status)
	assert.NotNil(t, p.Clips)
	assert.NotNil(t, p.Tracks)
	assert.NotNil(t, p.Metadata.Departments)
	assert.Equal(t, 24, p.Settings.FrameRate)
	assert.Equal(t, 1.0, p.Settings.TimelineZoom)
}

func TestTouchAdvancesUpdatedAt(t *testing.T) {
	p := &Playlist{UpdatedAt: time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC)}
	before := p.UpdatedAt
	p.Touch()
	assert.True(t, p.UpdatedAt.After(before))
	assert.Equal(t, time.UTC, p.UpdatedAt.Location())
}
