package timeline

import (
	"strings"

	"github.com/horusvfx/playlist-api/internal/models"
	"github.com/horusvfx/playlist-api/pkg/config"
)

// LaneClip is a clip placed on a lane with its computed pixel geometry
type LaneClip struct {
	models.Clip
	OffsetPx int `json:"offset_px"`
	WidthPx  int `json:"width_px"`
}

// Lane is one track with the clips assigned to it, in position order
type Lane struct {
	Track models.Track `json:"track"`
	Clips []LaneClip   `json:"clips"`
}

// View is the timeline layout handed to the presentation layer. It is
// computed at read time and never persisted.
type View struct {
	PlaylistID     string  `json:"playlist_id"`
	Name           string  `json:"name"`
	FrameRate      int     `json:"frame_rate"`
	TotalFrames    int     `json:"total_frames"`
	PixelsPerFrame float64 `json:"pixels_per_frame"`
	Lanes          []Lane  `json:"lanes"`
}

// BuildView assigns each clip to a lane and computes its pixel
// geometry. Clips carry a stored track_id set when they were added;
// clips persisted before track assignment was stored (track_id 0) fall
// back to the old heuristic: the first track whose name contains the
// clip's department, case-insensitively. A clip matching neither is
// omitted from the view even though it remains in the data model.
func BuildView(p *models.Playlist, cfg config.TimelineConfig) View {
	zoom := p.Settings.TimelineZoom
	if zoom <= 0 {
		zoom = 1.0
	}
	scale := cfg.PixelsPerFrame * zoom

	view := View{
		PlaylistID:     p.ID,
		Name:           p.Name,
		FrameRate:      p.Settings.FrameRate,
		PixelsPerFrame: scale,
		Lanes:          make([]Lane, len(p.Tracks)),
	}

	laneByTrackID := make(map[int]int, len(p.Tracks))
	for i, track := range p.Tracks {
		view.Lanes[i] = Lane{Track: track, Clips: []LaneClip{}}
		laneByTrackID[track.TrackID] = i
	}

	for i := range p.Clips {
		clip := p.Clips[i]
		if end := clip.EndPosition(); end > view.TotalFrames {
			view.TotalFrames = end
		}

		lane, ok := laneByTrackID[clip.TrackID]
		if !ok {
			lane, ok = laneForDepartment(p.Tracks, clip.Department)
		}
		if !ok {
			continue
		}

		width := int(float64(clip.DurationFrames()) * scale)
		if width < cfg.MinClipWidth {
			width = cfg.MinClipWidth
		}
		view.Lanes[lane].Clips = append(view.Lanes[lane].Clips, LaneClip{
			Clip:     clip,
			OffsetPx: int(float64(clip.Position) * scale),
			WidthPx:  width,
		})
	}

	return view
}

func laneForDepartment(tracks []models.Track, department string) (int, bool) {
	if department == "" {
		return 0, false
	}
	needle := strings.ToLower(department)
	for i, track := range tracks {
		if strings.Contains(strings.ToLower(track.Name), needle) {
			return i, true
		}
	}
	return 0, false
}
