package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Process new notebook export emails",
	Long: `Searches the mailbox for unprocessed notebook export emails,
recovers the text of each document and files the resulting notes into
the vault. Messages that were handled before are skipped.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	svc, err := service()
	if err != nil {
		return err
	}

	cmd.Println("Searching for new notebook exports...")

	result, err := svc.Sync(cmd.Context())
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if result.MessagesFound == 0 {
		cmd.Println("No new emails.")
		return nil
	}

	cmd.Printf("Processed %d of %d message(s), created %d note(s)",
		result.MessagesProcessed, result.MessagesFound, result.NotesCreated)
	if result.ErrorCount > 0 {
		cmd.Printf(", %d error(s)", result.ErrorCount)
	}
	cmd.Println()

	return nil
}
