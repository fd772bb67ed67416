package config

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, "file", GetString("store.backend"))
	assert.Equal(t, "./data/playlists.json", GetString("store.path"))
	assert.Equal(t, 24, GetInt("playlists.default_frame_rate"))
	assert.Equal(t, 120, GetInt("playlists.default_clip_duration"))
	assert.True(t, GetBool("rate_limiting.enabled"))
}

func TestEnvironmentOverride(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	os.Setenv("PLAYLIST_SERVER_PORT", "9090")
	defer os.Unsetenv("PLAYLIST_SERVER_PORT")

	setDefaults()
	viper.SetEnvPrefix("PLAYLIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	assert.Equal(t, 9090, GetInt("server.port"))
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
	}{
		{
			name: "invalid port",
			setup: func() {
				setDefaults()
				viper.Set("server.port", -1)
			},
		},
		{
			name: "unknown store backend",
			setup: func() {
				setDefaults()
				viper.Set("store.backend", "mongodb")
			},
		},
		{
			name: "empty store path",
			setup: func() {
				setDefaults()
				viper.Set("store.path", "")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			tt.setup()
			assert.Error(t, validate())
		})
	}
}

func TestValidateAutoCorrects(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("playlists.default_frame_rate", 0)
	viper.Set("playlists.default_clip_duration", -10)

	require.NoError(t, validate())
	assert.Equal(t, 24, GetInt("playlists.default_frame_rate"))
	assert.Equal(t, 120, GetInt("playlists.default_clip_duration"))
}

func TestConfigStructValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Store.Backend = "sqlite"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 24, cfg.Playlists.DefaultFrameRate)

	cfg.Store.Backend = "redis"
	assert.Error(t, cfg.Validate())
}
