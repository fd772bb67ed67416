package cmd

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/horusvfx/playlist-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playlist-api",
	Short: "Review Playlist API server",
	Long: `Review Playlist API - a playlist manager for review sessions

This API manages playlists of media clips for dailies and review
sessions: creating and editing playlists, appending and reordering
clips, assigning clips to timeline tracks, and serving a computed
timeline layout to review room clients.

Features:
  • Playlist CRUD with draft/active/locked workflow status
  • Clip append, update, remove and reorder with gapless positions
  • Track assignment with department-based fallback matching
  • Timeline lane layout with pixel geometry for review UIs
  • Durable single-document storage (JSON file or SQLite)`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)

	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	// Skip config loading for commands that don't need it
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && cmd.Name() == "version" {
		return
	}

	// Initialize the configuration
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	configureLogger()
}

// configureLogger applies the logging flags and config to the process logger
func configureLogger() {
	levelName, _ := rootCmd.PersistentFlags().GetString("log-level")
	if levelName == "" {
		levelName = config.GetString("logging.level")
	}
	if level, err := charmlog.ParseLevel(levelName); err == nil {
		charmlog.SetLevel(level)
	}

	jsonLogs, _ := rootCmd.PersistentFlags().GetBool("json-logs")
	if jsonLogs || config.GetString("logging.format") == "json" {
		charmlog.SetFormatter(charmlog.JSONFormatter)
	}
}
