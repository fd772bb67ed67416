package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system.
// This should be called once at application startup.
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment overrides, e.g. PLAYLIST_SERVER_PORT=9090
		viper.SetEnvPrefix("PLAYLIST")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing config file is fine, defaults and env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	backend := viper.GetString("store.backend")
	if backend != "file" && backend != "sqlite" {
		return fmt.Errorf("invalid store backend: %q (expected \"file\" or \"sqlite\")", backend)
	}

	if viper.GetString("store.path") == "" {
		return fmt.Errorf("store path must not be empty")
	}

	// Auto-correct nonsense playlist defaults
	if viper.GetInt("playlists.default_frame_rate") <= 0 {
		viper.Set("playlists.default_frame_rate", 24)
	}
	if viper.GetInt("playlists.default_clip_duration") <= 0 {
		viper.Set("playlists.default_clip_duration", 120)
	}
	if viper.GetFloat64("timeline.pixels_per_frame") <= 0 {
		viper.Set("timeline.pixels_per_frame", 2.0)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Store.Backend != "file" && c.Store.Backend != "sqlite" {
		return fmt.Errorf("invalid store backend: %q", c.Store.Backend)
	}

	if c.Playlists.DefaultFrameRate <= 0 {
		c.Playlists.DefaultFrameRate = 24
	}
	if c.Playlists.DefaultClipDuration <= 0 {
		c.Playlists.DefaultClipDuration = 120
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Store defaults
	viper.SetDefault("store.backend", "file")
	viper.SetDefault("store.path", "./data/playlists.json")
	viper.SetDefault("store.lock_timeout", 5*time.Second)
	viper.SetDefault("store.log_queries", false)

	// Playlist defaults
	viper.SetDefault("playlists.project_id", "proj_001")
	viper.SetDefault("playlists.default_frame_rate", 24)
	viper.SetDefault("playlists.default_track_height", 60)
	viper.SetDefault("playlists.default_clip_duration", 120)

	// Timeline rendering defaults
	viper.SetDefault("timeline.pixels_per_frame", 2.0)
	viper.SetDefault("timeline.min_clip_width", 20)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
