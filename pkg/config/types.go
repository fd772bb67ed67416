package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server       ServerConfig    `mapstructure:"server"`
	Store        StoreConfig     `mapstructure:"store"`
	Playlists    PlaylistsConfig `mapstructure:"playlists"`
	Timeline     TimelineConfig  `mapstructure:"timeline"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Logging      LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// StoreConfig contains document store settings
type StoreConfig struct {
	// Backend selects the document store implementation: "file" or "sqlite"
	Backend     string        `mapstructure:"backend"`
	Path        string        `mapstructure:"path"`
	LockTimeout time.Duration `mapstructure:"lock_timeout"`
	LogQueries  bool          `mapstructure:"log_queries"`
}

// PlaylistsConfig contains playlist defaults applied at create time
type PlaylistsConfig struct {
	ProjectID           string `mapstructure:"project_id"`
	DefaultFrameRate    int    `mapstructure:"default_frame_rate"`
	DefaultTrackHeight  int    `mapstructure:"default_track_height"`
	DefaultClipDuration int    `mapstructure:"default_clip_duration"`
}

// TimelineConfig contains lane-layout rendering hints
type TimelineConfig struct {
	PixelsPerFrame float64 `mapstructure:"pixels_per_frame"`
	MinClipWidth   int     `mapstructure:"min_clip_width"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
