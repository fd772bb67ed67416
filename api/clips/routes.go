package clips

import (
	"github.com/gin-gonic/gin"

	"github.com/horusvfx/playlist-api/api/types"
)

// RegisterRoutes registers clip engine routes on the playlist group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("/:id/clips", Add(deps))
	group.POST("/:id/clips/reorder", Reorder(deps))
	group.PUT("/:id/clips/:clipId", Update(deps))
	group.DELETE("/:id/clips/:clipId", Remove(deps))
}
