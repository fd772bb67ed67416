package timeline

import (
	"github.com/gin-gonic/gin"

	"github.com/horusvfx/playlist-api/api/types"
	timelinesvc "github.com/horusvfx/playlist-api/internal/services/timeline"
)

// Get renders a playlist as stacked track lanes with pixel geometry
// @Summary      Get timeline view
// @Description  Project a playlist onto its tracks: clips are grouped by track, placed by position and sized by duration at the configured pixel scale.
// @Tags         timeline
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Success      200 {object} types.TimelineResponse "Timeline view"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Router       /api/v1/playlists/{id}/timeline [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		playlist, err := deps.PlaylistService.Get(c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		view := timelinesvc.BuildView(playlist, deps.Timeline)
		types.SendSuccess(c, types.TimelineResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Timeline:     &view,
		})
	}
}
