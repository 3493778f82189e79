package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mindgarden-labs/scribesync/internal/core/domain"
	"github.com/mindgarden-labs/scribesync/internal/core/ports/driven"
	"github.com/mindgarden-labs/scribesync/internal/core/ports/driving"
	"github.com/mindgarden-labs/scribesync/internal/logger"
	"github.com/mindgarden-labs/scribesync/internal/recovery"
)

// TextRecoverer turns raw document bytes into plain text.
type TextRecoverer interface {
	Recover(ctx context.Context, data []byte) string
}

// NoteParser splits recovered text into note records.
type NoteParser interface {
	Parse(text, sourceLabel string) []domain.NoteRecord
}

// Ensure SyncService implements the interface.
var _ driving.SyncOrchestrator = (*SyncService)(nil)

// SyncService coordinates the export-to-vault pipeline.
type SyncService struct {
	mail       driven.MailSource
	downloader driven.Downloader
	recoverer  TextRecoverer
	parser     NoteParser
	notes      driven.NoteStore
	processed  driven.ProcessedStore
}

// NewSyncService creates a new sync service.
func NewSyncService(
	mail driven.MailSource,
	downloader driven.Downloader,
	recoverer TextRecoverer,
	parser NoteParser,
	notes driven.NoteStore,
	processed driven.ProcessedStore,
) *SyncService {
	return &SyncService{
		mail:       mail,
		downloader: downloader,
		recoverer:  recoverer,
		parser:     parser,
		notes:      notes,
		processed:  processed,
	}
}

// Sync processes every unhandled export message. A failing message is
// counted and skipped, never aborting the run; only listing failures
// and context cancellation end it early.
func (s *SyncService) Sync(ctx context.Context) (*driving.SyncResult, error) {
	refs, err := s.mail.Search(ctx)
	if err != nil {
		return nil, fmt.Errorf("search messages: %w", err)
	}

	result := &driving.SyncResult{MessagesFound: len(refs)}
	logger.Info("Found %d candidate messages", len(refs))

	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		done, err := s.processed.IsProcessed(ctx, ref.ID)
		if err != nil {
			return result, fmt.Errorf("check processed state: %w", err)
		}
		if done {
			logger.Debug("Skipping already processed message %s", ref.ID)
			continue
		}

		created, err := s.processMessage(ctx, ref.ID)
		if err != nil {
			logger.Warn("Processing message %s failed: %v", ref.ID, err)
			result.ErrorCount++
			continue
		}

		result.MessagesProcessed++
		result.NotesCreated += created
	}

	logger.Info("Sync complete: %d processed, %d notes, %d errors",
		result.MessagesProcessed, result.NotesCreated, result.ErrorCount)
	return result, nil
}

// processMessage runs one message end to end. A message that yields no
// usable text is still marked processed so it is not retried forever.
func (s *SyncService) processMessage(ctx context.Context, id string) (int, error) {
	export, err := s.mail.Fetch(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("fetch message: %w", err)
	}

	text := s.recoverText(ctx, export)
	if strings.TrimSpace(text) == "" {
		logger.Info("Message %s carried no recoverable text", id)
		if markErr := s.processed.MarkProcessed(ctx, id); markErr != nil {
			return 0, fmt.Errorf("mark processed: %w", markErr)
		}
		return 0, nil
	}

	created, err := s.persistNotes(ctx, text, export.Subject)
	if err != nil {
		return created, err
	}

	if err := s.processed.MarkProcessed(ctx, id); err != nil {
		return created, fmt.Errorf("mark processed: %w", err)
	}
	return created, nil
}

// recoverText extracts plain text from whatever payload the export
// carries. Every failure is soft; the worst case is the empty string.
func (s *SyncService) recoverText(ctx context.Context, export *domain.Export) string {
	switch export.Kind {
	case domain.ExportPDF:
		logger.Debug("Recovering text from attachment %s", export.Filename)
		return s.recoverer.Recover(ctx, export.Data)

	case domain.ExportLinks:
		logger.Debug("Downloading %d export link(s)", len(export.Links))
		var b strings.Builder
		for _, link := range export.Links {
			data, err := s.downloader.Download(ctx, link)
			if err != nil {
				logger.Warn("Download failed: %v", err)
				continue
			}
			if text := s.textFromDownload(ctx, link, data); text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
		return b.String()

	default:
		return ""
	}
}

// textFromDownload classifies a downloaded payload. Exports arrive
// either as plain text files or as PDFs; anything else (an expired-link
// HTML error page, say) is dropped.
func (s *SyncService) textFromDownload(ctx context.Context, link string, data []byte) string {
	head := data
	if len(head) > 1000 {
		head = head[:1000]
	}

	switch {
	case strings.HasSuffix(link, ".txt") ||
		(!bytes.Contains(head, []byte("<!DOCTYPE")) && !recovery.IsPDF(data)):
		return string(data)
	case strings.HasSuffix(link, ".pdf") || recovery.IsPDF(data):
		return s.recoverer.Recover(ctx, data)
	default:
		return ""
	}
}

// persistNotes parses text into records and saves each one. A record
// that fails to save is logged and skipped.
func (s *SyncService) persistNotes(ctx context.Context, text, sourceLabel string) (int, error) {
	records := s.parser.Parse(text, sourceLabel)
	logger.Info("Parsed %d note(s) from %q", len(records), sourceLabel)

	created := 0
	for _, record := range records {
		path, err := s.notes.Save(ctx, record)
		if err != nil {
			logger.Warn("Saving note %q failed: %v", record.Title, err)
			continue
		}
		logger.Debug("Created %s", path)
		created++
	}
	return created, nil
}

// Import runs the recovery and parsing pipeline over a local file.
func (s *SyncService) Import(ctx context.Context, data []byte, sourceLabel string) (int, error) {
	if len(data) == 0 {
		return 0, domain.ErrInvalidInput
	}

	var text string
	if recovery.IsPDF(data) {
		text = s.recoverer.Recover(ctx, data)
	} else {
		text = string(data)
	}

	if strings.TrimSpace(text) == "" {
		return 0, domain.ErrNoContent
	}

	return s.persistNotes(ctx, text, sourceLabel)
}
