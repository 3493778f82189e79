package driven

import (
	"context"

	"github.com/mindgarden-labs/scribesync/internal/core/domain"
)

// NoteStore persists note records. Implementations own destination
// resolution, title sanitisation and collision-safe naming: an existing
// record is never overwritten.
type NoteStore interface {
	// Save writes one record and returns the location it was stored at.
	Save(ctx context.Context, record domain.NoteRecord) (string, error)
}
