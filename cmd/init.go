package cmd

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/horusvfx/playlist-api/internal/models"
	"github.com/horusvfx/playlist-api/internal/store"
	"github.com/horusvfx/playlist-api/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap the playlist document store",
	Long: `Create the configured document store with an empty playlist collection.

For the file backend this writes the collection JSON document and its
parent directory. For the sqlite backend it creates the database file
and the document table.

An existing non-empty collection is left untouched unless --force is
given, in which case it is replaced by an empty one.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "replace an existing collection with an empty one")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	documentStore, err := store.New(cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer func() {
		if err := documentStore.Close(); err != nil {
			charmlog.Warn("Failed to close document store", "error", err)
		}
	}()

	collection, err := documentStore.LoadAll()
	if err != nil {
		return err
	}

	if len(collection.Playlists) > 0 && !force {
		fmt.Fprintf(cmd.OutOrStdout(),
			"Store at %s already holds %d playlist(s); use --force to replace it\n",
			cfg.Store.Path, len(collection.Playlists))
		return nil
	}

	if err := documentStore.SaveAll(models.NewCollection()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty playlist collection at %s (%s backend)\n",
		cfg.Store.Path, cfg.Store.Backend)
	return nil
}
