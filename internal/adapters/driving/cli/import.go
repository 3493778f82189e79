package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a local export file into the vault",
	Long: `Runs the recovery and parsing pipeline over a local PDF or text
file instead of fetching it from the mailbox. Useful for exports copied
off the device by hand.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	svc, err := service()
	if err != nil {
		return err
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	// The file name stands in for the email subject as the source label.
	label := filepath.Base(path)

	created, err := svc.Import(cmd.Context(), data, label)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Created %d note(s) from %s\n", created, label)
	return nil
}
