package timeline_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclips "github.com/horusvfx/playlist-api/api/clips"
	apiplaylists "github.com/horusvfx/playlist-api/api/playlists"
	apitimeline "github.com/horusvfx/playlist-api/api/timeline"
	"github.com/horusvfx/playlist-api/api/types"
	playlistsvc "github.com/horusvfx/playlist-api/internal/services/playlists"
	timelinesvc "github.com/horusvfx/playlist-api/internal/services/timeline"
	"github.com/horusvfx/playlist-api/internal/store"
	"github.com/horusvfx/playlist-api/pkg/config"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	documentStore, err := store.New(config.StoreConfig{
		Backend:     "file",
		Path:        filepath.Join(t.TempDir(), "playlists.json"),
		LockTimeout: time.Second,
	})
	require.NoError(t, err)

	defaults := config.PlaylistsConfig{
		ProjectID:           "proj_001",
		DefaultFrameRate:    24,
		DefaultTrackHeight:  60,
		DefaultClipDuration: 120,
	}
	cache := playlistsvc.NewCollectionCache(documentStore)
	deps := &types.Dependencies{
		Store:           documentStore,
		PlaylistService: playlistsvc.NewService(cache, defaults),
		ClipService:     timelinesvc.NewService(cache, defaults),
		Timeline:        config.TimelineConfig{PixelsPerFrame: 2.0, MinClipWidth: 20},
	}

	router := gin.New()
	group := router.Group("/api/v1/playlists")
	apiplaylists.RegisterRoutes(group, deps)
	apiclips.RegisterRoutes(group, deps)
	apitimeline.RegisterRoutes(group, deps)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGetTimeline(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/playlists", gin.H{"name": "Dailies"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created types.SinglePlaylistResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Playlist.ID

	w = doJSON(t, router, http.MethodPost, "/api/v1/playlists/"+id+"/clips",
		gin.H{"media_id": "media_001", "department": "Animation", "duration": 100})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/v1/playlists/"+id+"/clips",
		gin.H{"media_id": "media_002", "department": "Lighting", "duration": 50})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("computed lane layout", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/playlists/"+id+"/timeline", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp types.TimelineResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Timeline)

		assert.Equal(t, id, resp.Timeline.PlaylistID)
		assert.Equal(t, 150, resp.Timeline.TotalFrames)
		assert.Equal(t, 2.0, resp.Timeline.PixelsPerFrame)
		require.Len(t, resp.Timeline.Lanes, 1)

		lane := resp.Timeline.Lanes[0]
		assert.Equal(t, "Video Track 1", lane.Track.Name)
		require.Len(t, lane.Clips, 2)
		assert.Equal(t, 0, lane.Clips[0].OffsetPx)
		assert.Equal(t, 200, lane.Clips[0].WidthPx)
		assert.Equal(t, 200, lane.Clips[1].OffsetPx)
		assert.Equal(t, 100, lane.Clips[1].WidthPx)
	})

	t.Run("unknown playlist", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/playlists/playlist_ffffffff/timeline", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
