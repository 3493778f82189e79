package driven

import "context"

// Recognizer performs optical character recognition on one page image.
// A failure means "zero characters recovered from this page"; callers
// must never propagate it as a hard error.
type Recognizer interface {
	// Recognize returns the text found in the given PNG-encoded image.
	Recognize(ctx context.Context, image []byte) (string, error)

	// Close releases recognition resources.
	Close() error
}
