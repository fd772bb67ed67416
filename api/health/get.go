package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/horusvfx/playlist-api/api/types"
)

// Get handles health check requests
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		// Add store status
		if deps != nil && deps.PlaylistService != nil {
			response["store"] = getStoreStatus(deps)
		} else {
			response["store"] = gin.H{"status": "not configured"}
		}

		c.JSON(http.StatusOK, response)
	}
}

// getStoreStatus probes the store through the playlist service, so the
// check exercises the same cache path every other reader uses
func getStoreStatus(deps *types.Dependencies) gin.H {
	playlists, err := deps.PlaylistService.List()
	if err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy", "playlists": len(playlists)}
}
