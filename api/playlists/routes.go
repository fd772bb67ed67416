package playlists

import (
	"github.com/gin-gonic/gin"

	"github.com/horusvfx/playlist-api/api/types"
)

// RegisterRoutes registers playlist CRUD routes on the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("", Create(deps))
	group.GET("", List(deps))
	group.POST("/refresh", Refresh(deps))
	group.GET("/:id", Get(deps))
	group.PATCH("/:id", Update(deps))
	group.DELETE("/:id", Delete(deps))
	group.POST("/:id/duplicate", Duplicate(deps))
}
