package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ghmine/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ghmine/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
	"github.com/custodia-labs/ghmine/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
)

// configStore is loaded in PersistentPreRunE unless already set (tests).
var configStore driven.ConfigStore

var rootCmd = &cobra.Command{
	Use:   "ghmine",
	Short: "Harvest GitHub repository metadata month by month",
	Long: `ghmine collects the most-starred repositories of a language for every
calendar month in a date range, using the GitHub repository search API, and
writes them to a single JSON document.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.ghmine)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if configStore != nil {
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
		return nil
	}
	configStore = store
	logger.Debug("config loaded from %s", store.Path())
	return nil
}

// dataDir returns the directory holding the history database.
func dataDir() (string, error) {
	dir := configDir
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	return filepath.Join(dir, "data"), nil
}
