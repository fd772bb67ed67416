package timeline

import (
	"sort"

	"github.com/horusvfx/playlist-api/internal/models"
)

// Recompute derives the metadata aggregate from the playlist's current
// clip sequence. This is the only legitimate writer of metadata: every
// clip add/remove/reorder/duration change calls it, and nothing else
// touches the fields.
func Recompute(p *models.Playlist) models.Metadata {
	meta := models.Metadata{
		ClipCount:   len(p.Clips),
		Departments: []string{},
	}

	seen := make(map[string]bool)
	for i := range p.Clips {
		meta.TotalFrames += p.Clips[i].DurationFrames()
		dept := p.Clips[i].Department
		if dept != "" && !seen[dept] {
			seen[dept] = true
			meta.Departments = append(meta.Departments, dept)
		}
	}
	sort.Strings(meta.Departments)

	return meta
}
