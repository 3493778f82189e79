// Package vault writes note records into an Obsidian vault on the local
// filesystem.
package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mindgarden-labs/scribesync/internal/core/domain"
	"github.com/mindgarden-labs/scribesync/internal/core/ports/driven"
	"github.com/mindgarden-labs/scribesync/internal/logger"
	"github.com/mindgarden-labs/scribesync/internal/naming"
)

// DefaultFolder receives records that carry no folder of their own.
const DefaultFolder = "3 - Nonfiction"

// Ensure Store implements the interface.
var _ driven.NoteStore = (*Store)(nil)

// Store persists records as Markdown files under a vault root. Each
// record's folder is created on demand; name collisions get a numeric
// suffix so existing notes are never overwritten.
type Store struct {
	root          string
	defaultFolder string
}

// Option configures a Store.
type Option func(*Store)

// WithDefaultFolder overrides the folder used for records without one.
func WithDefaultFolder(folder string) Option {
	return func(s *Store) {
		if folder != "" {
			s.defaultFolder = folder
		}
	}
}

// New creates a vault store rooted at path.
func New(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, domain.ErrVaultNotConfigured
	}
	s := &Store{root: path, defaultFolder: DefaultFolder}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Save writes the record and returns the path of the created file.
func (s *Store) Save(ctx context.Context, record domain.NoteRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	folder := record.Folder
	if folder == "" {
		folder = s.defaultFolder
	}
	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create note folder: %w", err)
	}

	base := naming.Sanitize(record.Title)
	if base == "" {
		base = naming.Fallback(record.Ordinal)
	}

	name := naming.NextAvailable(base, func(candidate string) bool {
		_, err := os.Stat(filepath.Join(dir, candidate+".md"))
		return err == nil
	})

	path := filepath.Join(dir, name+".md")
	if err := os.WriteFile(path, []byte(record.Body), 0o644); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}

	logger.Debug("created note %s", path)
	return path, nil
}
