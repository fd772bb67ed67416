package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horusvfx/playlist-api/internal/models"
	"github.com/horusvfx/playlist-api/pkg/config"
)

func testTimelineConfig() config.TimelineConfig {
	return config.TimelineConfig{PixelsPerFrame: 2.0, MinClipWidth: 20}
}

func reviewPlaylist() *models.Playlist {
	return &models.Playlist{
		ID:       "playlist_review",
		Name:     "Lighting Review",
		Settings: models.Settings{FrameRate: 24, TimelineZoom: 1.0},
		Tracks: []models.Track{
			{TrackID: 1, Name: "Lighting Track", Type: "video", Height: 60},
			{TrackID: 2, Name: "Compositing Track", Type: "video", Height: 60},
		},
	}
}

func TestBuildViewGroupsByStoredTrackID(t *testing.T) {
	p := reviewPlaylist()
	p.Clips = []models.Clip{
		{ClipID: "clip_1", TrackID: 1, Duration: 100, Position: 0, Department: "Lighting"},
		{ClipID: "clip_2", TrackID: 2, Duration: 90, Position: 100, Department: "Compositing"},
		{ClipID: "clip_3", TrackID: 1, Duration: 50, Position: 190, Department: "Lighting"},
	}

	view := BuildView(p, testTimelineConfig())

	require.Len(t, view.Lanes, 2)
	assert.Len(t, view.Lanes[0].Clips, 2)
	assert.Len(t, view.Lanes[1].Clips, 1)
	assert.Equal(t, 240, view.TotalFrames)
	assert.Equal(t, 24, view.FrameRate)
}

func TestBuildViewDepartmentFallback(t *testing.T) {
	p := reviewPlaylist()
	// track_id 0: document written before assignment was stored
	p.Clips = []models.Clip{
		{ClipID: "clip_1", TrackID: 0, Duration: 100, Position: 0, Department: "lighting"},
	}

	view := BuildView(p, testTimelineConfig())

	require.Len(t, view.Lanes[0].Clips, 1, "case-insensitive name match places the clip")
	assert.Empty(t, view.Lanes[1].Clips)
}

func TestBuildViewOmitsUnmatchableClips(t *testing.T) {
	p := reviewPlaylist()
	p.Clips = []models.Clip{
		{ClipID: "clip_1", TrackID: 0, Duration: 100, Position: 0, Department: "FX"},
		{ClipID: "clip_2", TrackID: 0, Duration: 50, Position: 100, Department: ""},
	}

	view := BuildView(p, testTimelineConfig())

	assert.Empty(t, view.Lanes[0].Clips)
	assert.Empty(t, view.Lanes[1].Clips)
	// omitted clips still count toward the ruler length
	assert.Equal(t, 150, view.TotalFrames)
}

func TestBuildViewPixelGeometry(t *testing.T) {
	p := reviewPlaylist()
	p.Clips = []models.Clip{
		{ClipID: "clip_1", TrackID: 1, Duration: 100, Position: 50},
		{ClipID: "clip_2", TrackID: 1, Duration: 3, Position: 150},
	}

	view := BuildView(p, testTimelineConfig())

	require.Len(t, view.Lanes[0].Clips, 2)
	wide := view.Lanes[0].Clips[0]
	assert.Equal(t, 100, wide.OffsetPx, "offset = position * pixels per frame")
	assert.Equal(t, 200, wide.WidthPx)

	narrow := view.Lanes[0].Clips[1]
	assert.Equal(t, 20, narrow.WidthPx, "tiny clips are clamped to the minimum width")
}

func TestBuildViewAppliesZoom(t *testing.T) {
	p := reviewPlaylist()
	p.Settings.TimelineZoom = 2.0
	p.Clips = []models.Clip{
		{ClipID: "clip_1", TrackID: 1, Duration: 100, Position: 10},
	}

	view := BuildView(p, testTimelineConfig())

	assert.Equal(t, 4.0, view.PixelsPerFrame)
	assert.Equal(t, 40, view.Lanes[0].Clips[0].OffsetPx)
	assert.Equal(t, 400, view.Lanes[0].Clips[0].WidthPx)
}
