package timeline

import (
	"github.com/gin-gonic/gin"

	"github.com/horusvfx/playlist-api/api/types"
)

// RegisterRoutes registers the read-only timeline view route
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/:id/timeline", Get(deps))
}
