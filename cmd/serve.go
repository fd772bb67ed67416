package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/horusvfx/playlist-api/api"
	"github.com/horusvfx/playlist-api/api/types"
	playlistsService "github.com/horusvfx/playlist-api/internal/services/playlists"
	timelineService "github.com/horusvfx/playlist-api/internal/services/timeline"
	"github.com/horusvfx/playlist-api/internal/store"
	"github.com/horusvfx/playlist-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Review Playlist API server with the configured settings.

The server loads the playlist collection from the configured document
store and serves playlist, clip and timeline endpoints over HTTP.

Example:
  playlist-api serve
  playlist-api serve --port 9090
  playlist-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	documentStore, err := store.New(cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}

	// Both services share one cache so clip edits and playlist edits
	// see the same in-memory collection
	cache := playlistsService.NewCollectionCache(documentStore)
	deps := &types.Dependencies{
		Store:           documentStore,
		PlaylistService: playlistsService.NewService(cache, cfg.Playlists),
		ClipService:     timelineService.NewService(cache, cfg.Playlists),
		Timeline:        cfg.Timeline,
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	charmlog.Info("Starting Review Playlist API server",
		"address", address,
		"store", cfg.Store.Backend,
		"path", cfg.Store.Path)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	charmlog.Info("Server is ready to handle requests", "address", address)

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		charmlog.Info("Shutting down server")
	case err := <-serverErr:
		charmlog.Error("Server failed", "error", err)
	}

	// Create a context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		charmlog.Error("Server forced to shutdown", "error", err)
		return err
	}

	charmlog.Info("Server gracefully stopped")
	return nil
}
