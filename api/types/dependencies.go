package types

import (
	"github.com/horusvfx/playlist-api/internal/services/playlists"
	"github.com/horusvfx/playlist-api/internal/services/timeline"
	"github.com/horusvfx/playlist-api/internal/store"
	"github.com/horusvfx/playlist-api/pkg/config"
)

// Dependencies holds all the dependencies needed by handlers. One
// Dependencies value owns one cache/store pair, so independent
// sessions never share hidden state.
type Dependencies struct {
	Store           store.DocumentStore
	PlaylistService playlists.Service
	ClipService     timeline.Service
	Timeline        config.TimelineConfig
}
