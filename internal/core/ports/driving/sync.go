package driving

import "context"

// SyncResult summarises one sync run.
type SyncResult struct {
	// MessagesFound is the number of candidate messages returned by the
	// mail source, before the processed-set filter.
	MessagesFound int

	// MessagesProcessed is the number of messages handled this run.
	MessagesProcessed int

	// NotesCreated is the number of note records persisted.
	NotesCreated int

	// ErrorCount is the number of messages that failed. Failures never
	// abort the run.
	ErrorCount int
}

// SyncOrchestrator coordinates the export-to-vault pipeline.
type SyncOrchestrator interface {
	// Sync processes every unhandled export message end to end:
	// fetch, recover text, parse, persist, mark processed.
	Sync(ctx context.Context) (*SyncResult, error)

	// Import runs the recovery and parsing pipeline over a local file,
	// bypassing the mail source. Returns the number of notes created.
	Import(ctx context.Context, data []byte, sourceLabel string) (int, error)
}
