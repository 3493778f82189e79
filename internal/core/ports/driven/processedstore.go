package driven

import "context"

// ProcessedStore tracks which source messages have already been run
// through the pipeline, making re-runs idempotent at the message level.
type ProcessedStore interface {
	// IsProcessed reports whether the message was handled before.
	IsProcessed(ctx context.Context, messageID string) (bool, error)

	// MarkProcessed records the message as handled. Marking the same
	// message twice is not an error.
	MarkProcessed(ctx context.Context, messageID string) error

	// Close releases store resources.
	Close() error
}
