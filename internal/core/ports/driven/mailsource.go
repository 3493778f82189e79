package driven

import (
	"context"

	"github.com/mindgarden-labs/scribesync/internal/core/domain"
)

// MailSource finds candidate export emails and fetches their payload.
// The core makes no assumption about the provider behind it.
type MailSource interface {
	// Search returns references to candidate export messages, newest
	// batch first. It does not filter out already-processed messages;
	// that is the orchestrator's job.
	Search(ctx context.Context) ([]domain.MessageRef, error)

	// Fetch retrieves the document payload of a single message: a PDF
	// attachment, a set of download links, or nothing.
	Fetch(ctx context.Context, id string) (*domain.Export, error)
}
