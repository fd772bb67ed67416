package clips

import (
	"github.com/gin-gonic/gin"

	"github.com/horusvfx/playlist-api/api/types"
	"github.com/horusvfx/playlist-api/internal/services/timeline"
)

// Add appends a clip to a playlist
// @Summary      Add clip to playlist
// @Description  Append a clip referencing one media version. The clip starts where the last one ends; playlist metadata is recomputed.
// @Tags         clips
// @Accept       json
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Param        clip body types.AddClipRequest true "Media reference"
// @Success      201 {object} types.SingleClipResponse "Added clip"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Router       /api/v1/playlists/{id}/clips [post]
func Add(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AddClipRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		playlistID := c.Param("id")
		clip, err := deps.ClipService.AddClip(playlistID, timeline.AddClipParams{
			MediaID:    req.MediaID,
			Sequence:   req.Sequence,
			Shot:       req.Shot,
			Department: req.Department,
			Version:    req.Version,
			FilePath:   req.FilePath,
			StartFrame: req.StartFrame,
			EndFrame:   req.EndFrame,
			Duration:   req.Duration,
			TrackID:    req.TrackID,
			Notes:      req.Notes,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, types.SingleClipResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			PlaylistID:   playlistID,
			Clip:         clip,
		})
	}
}

// Update changes allow-listed clip fields
// @Summary      Update clip
// @Description  Update version, file path, frame range or notes. Duration changes reindex every later clip.
// @Tags         clips
// @Accept       json
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Param        clipId path string true "Clip ID"
// @Param        clip body types.UpdateClipRequest true "Fields to update"
// @Success      200 {object} types.SingleClipResponse "Updated clip"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Playlist or clip not found"
// @Router       /api/v1/playlists/{id}/clips/{clipId} [put]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.UpdateClipRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		playlistID := c.Param("id")
		clip, err := deps.ClipService.UpdateClip(playlistID, c.Param("clipId"), timeline.ClipUpdateFields{
			Version:    req.Version,
			FilePath:   req.FilePath,
			StartFrame: req.StartFrame,
			EndFrame:   req.EndFrame,
			Duration:   req.Duration,
			Notes:      req.Notes,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.SingleClipResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			PlaylistID:   playlistID,
			Clip:         clip,
		})
	}
}

// Remove deletes a clip and reindexes the remaining layout
// @Summary      Remove clip
// @Description  Delete a clip; remaining clips are reindexed to a gapless layout and metadata is recomputed.
// @Tags         clips
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Param        clipId path string true "Clip ID"
// @Success      200 {object} types.BaseResponse "Removed"
// @Failure      404 {object} types.ErrorResponse "Playlist or clip not found"
// @Router       /api/v1/playlists/{id}/clips/{clipId} [delete]
func Remove(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.ClipService.RemoveClip(c.Param("id"), c.Param("clipId")); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "clip removed"})
	}
}

// Reorder rebuilds the clip sequence to match the requested id order
// @Summary      Reorder clips
// @Description  Rebuild clip order from the given ids. Omitted clips keep their relative order at the end; unknown ids are ignored.
// @Tags         clips
// @Accept       json
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Param        order body types.ReorderClipsRequest true "Ordered clip ids"
// @Success      200 {object} types.SinglePlaylistResponse "Playlist with the new order"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Router       /api/v1/playlists/{id}/clips/reorder [post]
func Reorder(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ReorderClipsRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		playlist, err := deps.ClipService.ReorderClips(c.Param("id"), req.ClipIDs)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.SinglePlaylistResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Playlist:     playlist,
		})
	}
}
