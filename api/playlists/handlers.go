package playlists

import (
	"github.com/gin-gonic/gin"

	"github.com/horusvfx/playlist-api/api/types"
	playlistsvc "github.com/horusvfx/playlist-api/internal/services/playlists"
)

// Create creates a new playlist
// @Summary      Create playlist
// @Description  Create a new playlist with a generated id, draft status and one default track
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        playlist body types.CreatePlaylistRequest true "Playlist data"
// @Success      201 {object} types.SinglePlaylistResponse "Created playlist"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Persistence failure"
// @Router       /api/v1/playlists [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreatePlaylistRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		playlist, err := deps.PlaylistService.Create(playlistsvc.CreateParams{
			Name:        req.Name,
			CreatedBy:   req.CreatedBy,
			Description: req.Description,
			Type:        req.Type,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, types.SinglePlaylistResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Playlist:     playlist,
		})
	}
}

// List returns every playlist in the collection
// @Summary      List playlists
// @Description  Retrieve all playlists in the project collection
// @Tags         playlists
// @Produce      json
// @Success      200 {object} types.PlaylistsResponse "All playlists"
// @Failure      500 {object} types.ErrorResponse "Persistence failure"
// @Router       /api/v1/playlists [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := deps.PlaylistService.List()
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.PlaylistsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Playlists:    all,
			Count:        len(all),
		})
	}
}

// Get returns a single playlist by id
// @Summary      Get playlist
// @Description  Retrieve one playlist including clips, tracks and metadata
// @Tags         playlists
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Success      200 {object} types.SinglePlaylistResponse "Playlist"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Router       /api/v1/playlists/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		playlist, err := deps.PlaylistService.Get(c.Param("id"))
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

// Update changes allow-listed playlist fields
// @Summary      Update playlist
// @Description  Update name, description, status or settings. Clips, tracks and metadata are engine-owned and rejected here.
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Param        playlist body types.UpdatePlaylistRequest true "Fields to update"
// @Success      200 {object} types.SinglePlaylistResponse "Updated playlist"
// @Failure      400 {object} types.ErrorResponse "Disallowed field or invalid value"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Router       /api/v1/playlists/{id} [patch]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.UpdatePlaylistRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if field := req.DisallowedField(); field != "" {
			types.SendBadRequest(c, "field '"+field+"' cannot be changed through this endpoint")
			return
		}

		playlist, err := deps.PlaylistService.Update(c.Param("id"), playlistsvc.UpdateFields{
			Name:        req.Name,
			Description: req.Description,
			Status:      req.Status,
			Settings:    req.Settings,
		})
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

// Delete removes a playlist
// @Summary      Delete playlist
// @Description  Remove a playlist from the collection. References held by other subsystems are not cascaded.
// @Tags         playlists
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Success      200 {object} types.BaseResponse "Deleted"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Router       /api/v1/playlists/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.PlaylistService.Delete(c.Param("id")); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "playlist deleted"})
	}
}

// Duplicate deep-copies a playlist under a fresh id
// @Summary      Duplicate playlist
// @Description  Create a draft copy of an existing playlist, defaulting the name to "<name> Copy"
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Param        duplicate body types.DuplicatePlaylistRequest false "Optional name for the copy"
// @Success      201 {object} types.SinglePlaylistResponse "Duplicated playlist"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Router       /api/v1/playlists/{id}/duplicate [post]
func Duplicate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.DuplicatePlaylistRequest
		// body is optional, ignore bind errors on an empty payload
		_ = c.ShouldBindJSON(&req)

		playlist, err := deps.PlaylistService.Duplicate(c.Param("id"), req.Name)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, types.SinglePlaylistResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Playlist:     playlist,
		})
	}
}

// Refresh invalidates the cache and reloads from the store
// @Summary      Refresh playlists
// @Description  Drop the in-memory collection and reload it from durable storage
// @Tags         playlists
// @Produce      json
// @Success      200 {object} types.BaseResponse "Reloaded"
// @Failure      500 {object} types.ErrorResponse "Persistence failure"
// @Router       /api/v1/playlists/refresh [post]
func Refresh(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.PlaylistService.Refresh(); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "collection reloaded"})
	}
}
