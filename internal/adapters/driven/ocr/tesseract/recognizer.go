// Package tesseract provides the optical character recognition adapter
// backed by a local Tesseract installation.
package tesseract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/mindgarden-labs/scribesync/internal/core/ports/driven"
)

// Ensure Recognizer implements the interface.
var _ driven.Recognizer = (*Recognizer)(nil)

// Recognizer runs page images through Tesseract. It holds one client
// for its lifetime; the core processes pages sequentially, so no
// locking is needed.
type Recognizer struct {
	client *gosseract.Client
}

// New creates a Tesseract-backed recognizer. languages may be empty,
// in which case Tesseract's default (eng) is used.
func New(languages ...string) (*Recognizer, error) {
	client := gosseract.NewClient()
	if len(languages) > 0 {
		if err := client.SetLanguage(languages...); err != nil {
			client.Close()
			return nil, fmt.Errorf("set ocr languages: %w", err)
		}
	}
	return &Recognizer{client: client}, nil
}

// Recognize returns the text found in a PNG-encoded page image.
func (r *Recognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := r.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("load page image: %w", err)
	}
	text, err := r.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognise page: %w", err)
	}
	return text, nil
}

// Close releases the Tesseract client.
func (r *Recognizer) Close() error {
	return r.client.Close()
}
