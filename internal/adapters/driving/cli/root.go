// Package cli implements the scribesync command line interface.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mindgarden-labs/scribesync/internal/core/ports/driving"
	"github.com/mindgarden-labs/scribesync/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// serviceFactory builds the sync service after flags are parsed. It is
// injected by the composition root before Execute.
var serviceFactory func() (driving.SyncOrchestrator, error)

// syncOrchestrator caches the built service. Tests inject fakes here.
var syncOrchestrator driving.SyncOrchestrator

// Persistent flags.
var (
	flagVerbose bool
	flagConfig  string
	flagVault   string
)

var rootCmd = &cobra.Command{
	Use:   "scribesync",
	Short: "Sync handwritten notebook exports into an Obsidian vault",
	Long: `scribesync watches a Gmail mailbox for notebook export emails,
recovers the text of each exported document, splits it into individual
notes and files them into an Obsidian vault.

Notes can steer their own destination with a #shortcut tag or a
"Folder:" line, and name themselves with a "Title:" line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&flagVerbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(
		&flagConfig, "config", "", "Config directory (default ~/.scribesync)")
	rootCmd.PersistentFlags().StringVar(
		&flagVault, "vault", "", "Vault path (overrides config)")
}

// SetServiceFactory injects the constructor for the sync service. The
// factory runs after flag parsing so it sees --config and --vault.
func SetServiceFactory(factory func() (driving.SyncOrchestrator, error)) {
	serviceFactory = factory
}

// service returns the sync service, building it on first use.
func service() (driving.SyncOrchestrator, error) {
	if syncOrchestrator != nil {
		return syncOrchestrator, nil
	}
	if serviceFactory == nil {
		return nil, errors.New("sync service not configured")
	}
	svc, err := serviceFactory()
	if err != nil {
		return nil, err
	}
	syncOrchestrator = svc
	return svc, nil
}

// ConfigDir returns the --config flag value.
func ConfigDir() string {
	return flagConfig
}

// VaultPath returns the --vault flag value.
func VaultPath() string {
	return flagVault
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
