// Package recovery turns raw document bytes into the best-effort plain
// text representation. It reads the embedded text layer first and falls
// back to per-page optical character recognition when the result is too
// sparse to be useful, keeping whichever pass found more content.
package recovery

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"

	"github.com/mindgarden-labs/scribesync/internal/core/ports/driven"
	"github.com/mindgarden-labs/scribesync/internal/logger"
)

// directExtractionMinChars is the sparseness threshold: a text layer
// with fewer trimmed characters is assumed to come from a mostly-image
// document and triggers the recognition fallback.
const directExtractionMinChars = 100

// Engine recovers plain text from document bytes. Recovery never fails:
// every internal error is a soft condition, and a completely unreadable
// document yields the empty string.
type Engine struct {
	recognizer driven.Recognizer

	// Strategy functions, replaceable in tests.
	extract func(data []byte) (string, error)
	ocr     func(ctx context.Context, data []byte) (string, error)
}

// New creates a recovery engine. recognizer may be nil, in which case
// the recognition fallback is unavailable and only the embedded text
// layer is read.
func New(recognizer driven.Recognizer) *Engine {
	e := &Engine{recognizer: recognizer}
	e.extract = extractTextLayer
	e.ocr = e.recognizePages
	return e
}

// Recover returns the best-available plain text for the document.
func (e *Engine) Recover(ctx context.Context, data []byte) string {
	direct, err := e.extract(data)
	if err != nil {
		logger.Warn("text layer extraction failed: %v", err)
		direct = ""
	}
	logger.Debug("text layer yielded %d chars", len(direct))

	if utf8.RuneCountInString(strings.TrimSpace(direct)) >= directExtractionMinChars {
		return direct
	}

	logger.Debug("text layer too sparse, attempting recognition")
	recognised, err := e.ocr(ctx, data)
	if err != nil {
		logger.Warn("recognition failed: %v", err)
		return direct
	}
	logger.Debug("recognition yielded %d chars", len(recognised))

	// Keep the longer candidate: a mostly-image document yields near
	// nothing from the text layer, while recognition on a digitally
	// authored document only reintroduces noise.
	if len(recognised) > len(direct) {
		return recognised
	}
	return direct
}

// IsPDF reports whether data looks like a PDF document.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF"))
}

// extractTextLayer reads the embedded text of every page, concatenating
// a line break after each page that yields non-blank text. Unreadable
// pages are skipped.
func extractTextLayer(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs; recovery
	// failure is data here, not a fault.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("text layer extraction panicked: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	fonts := make(map[string]*pdf.Font)
	var b strings.Builder

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := p.Font(name)
				fonts[name] = &f
			}
		}

		pageText, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			logger.Warn("unreadable pdf page %d: %v", i, pageErr)
			continue
		}
		if strings.TrimSpace(pageText) != "" {
			b.WriteString(pageText)
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

// recognizePages rasterises each page and runs it through the
// recognizer. A page that fails to rasterise or recognise contributes
// zero characters; only a document that cannot be opened at all is an
// error.
func (e *Engine) recognizePages(ctx context.Context, data []byte) (string, error) {
	if e.recognizer == nil {
		return "", fmt.Errorf("no recognizer configured")
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("rasterize pdf: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		img, imgErr := doc.Image(n)
		if imgErr != nil {
			logger.Warn("rasterize page %d: %v", n+1, imgErr)
			continue
		}

		var buf bytes.Buffer
		if encErr := png.Encode(&buf, img); encErr != nil {
			logger.Warn("encode page %d: %v", n+1, encErr)
			continue
		}

		pageText, ocrErr := e.recognizer.Recognize(ctx, buf.Bytes())
		if ocrErr != nil {
			logger.Warn("recognise page %d: %v", n+1, ocrErr)
			continue
		}
		if strings.TrimSpace(pageText) != "" {
			b.WriteString(pageText)
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
