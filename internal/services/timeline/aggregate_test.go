package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/horusvfx/playlist-api/internal/models"
)

func TestRecomputeEmptyPlaylist(t *testing.T) {
	p := &models.Playlist{}
	meta := Recompute(p)

	assert.Equal(t, 0, meta.ClipCount)
	assert.Equal(t, 0, meta.TotalFrames)
	assert.Empty(t, meta.Departments)
	assert.NotNil(t, meta.Departments, "departments serializes as [], not null")
}

func TestRecomputeAggregates(t *testing.T) {
	p := &models.Playlist{
		Clips: []models.Clip{
			{ClipID: "clip_1", Department: "Lighting", Duration: 120},
			{ClipID: "clip_2", Department: "Animation", Duration: 80},
			{ClipID: "clip_3", Department: "Lighting", StartFrame: 1001, EndFrame: 1150},
		},
	}
	meta := Recompute(p)

	assert.Equal(t, 3, meta.ClipCount)
	assert.Equal(t, 120+80+150, meta.TotalFrames)
	assert.Equal(t, []string{"Animation", "Lighting"}, meta.Departments, "distinct and sorted")
}

func TestRecomputeSkipsEmptyDepartments(t *testing.T) {
	p := &models.Playlist{
		Clips: []models.Clip{
			{ClipID: "clip_1", Duration: 50},
			{ClipID: "clip_2", Department: "Compositing", Duration: 50},
		},
	}
	meta := Recompute(p)

	assert.Equal(t, 2, meta.ClipCount)
	assert.Equal(t, []string{"Compositing"}, meta.Departments)
}
