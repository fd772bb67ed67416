package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/horusvfx/playlist-api/api/clips"
	"github.com/horusvfx/playlist-api/api/health"
	"github.com/horusvfx/playlist-api/api/playlists"
	"github.com/horusvfx/playlist-api/api/timeline"
	"github.com/horusvfx/playlist-api/api/types"
	"github.com/horusvfx/playlist-api/api/version"
	_ "github.com/horusvfx/playlist-api/docs/swagger"
	playlistsService "github.com/horusvfx/playlist-api/internal/services/playlists"
	timelineService "github.com/horusvfx/playlist-api/internal/services/timeline"
	"github.com/horusvfx/playlist-api/internal/store"
	"github.com/horusvfx/playlist-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Wire the default service graph when the caller only provided a store
	if deps.PlaylistService == nil || deps.ClipService == nil {
		if deps.Store == nil {
			s, err := store.New(cfg.Store)
			if err != nil {
				return fmt.Errorf("failed to open document store: %w", err)
			}
			deps.Store = s
		}
		cache := playlistsService.NewCollectionCache(deps.Store)
		if deps.PlaylistService == nil {
			deps.PlaylistService = playlistsService.NewService(cache, cfg.Playlists)
		}
		if deps.ClipService == nil {
			deps.ClipService = timelineService.NewService(cache, cfg.Playlists)
		}
	}
	if deps.Timeline == (config.TimelineConfig{}) {
		deps.Timeline = cfg.Timeline
	}

	// Playlist routes with general rate limiting (10 req/s, burst of 20)
	playlistGroup := engine.Group("/api/v1/playlists")
	if cfg.RateLimiting.Enabled {
		playlistGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	}
	playlists.RegisterRoutes(playlistGroup, deps)
	clips.RegisterRoutes(playlistGroup, deps)
	timeline.RegisterRoutes(playlistGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
