// Command scribesync syncs handwritten notebook exports from a Gmail
// mailbox into an Obsidian vault.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mindgarden-labs/scribesync/internal/adapters/driven/config/file"
	"github.com/mindgarden-labs/scribesync/internal/adapters/driven/ocr/tesseract"
	"github.com/mindgarden-labs/scribesync/internal/adapters/driven/storage/sqlite"
	"github.com/mindgarden-labs/scribesync/internal/adapters/driven/vault"
	"github.com/mindgarden-labs/scribesync/internal/adapters/driving/cli"
	"github.com/mindgarden-labs/scribesync/internal/connectors/download"
	"github.com/mindgarden-labs/scribesync/internal/connectors/gmail"
	"github.com/mindgarden-labs/scribesync/internal/core/domain"
	"github.com/mindgarden-labs/scribesync/internal/core/ports/driven"
	"github.com/mindgarden-labs/scribesync/internal/core/ports/driving"
	"github.com/mindgarden-labs/scribesync/internal/core/services"
	"github.com/mindgarden-labs/scribesync/internal/logger"
	"github.com/mindgarden-labs/scribesync/internal/parser"
	"github.com/mindgarden-labs/scribesync/internal/recovery"
)

// Long-lived resources built by the service factory, registered here so
// they are released on exit even when wiring fails partway.
var (
	processedStore *sqlite.Store
	recognizer     driven.Recognizer
)

func main() {
	cli.SetServiceFactory(buildService)
	cli.SetAuthPaths(resolveAuthPaths)

	err := cli.Execute()
	closeResources()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func closeResources() {
	if processedStore != nil {
		if err := processedStore.Close(); err != nil {
			logger.Warn("close state store: %v", err)
		}
	}
	if recognizer != nil {
		if err := recognizer.Close(); err != nil {
			logger.Warn("close recognizer: %v", err)
		}
	}
}

// buildService wires the full pipeline. It runs after flag parsing so
// --config and --vault are visible.
func buildService() (driving.SyncOrchestrator, error) {
	cfg, err := file.NewConfigStore(cli.ConfigDir())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	notes, err := buildNoteStore(cfg)
	if err != nil {
		return nil, err
	}

	noteParser := buildParser(cfg)
	engine := recovery.New(buildRecognizer())

	processed, err := sqlite.NewStore(dataDir())
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}
	processedStore = processed

	mail, err := buildMailSource(cfg)
	if err != nil {
		return nil, err
	}

	return services.NewSyncService(
		mail,
		download.New(),
		engine,
		noteParser,
		notes,
		processed,
	), nil
}

// buildNoteStore resolves the vault location. The --vault flag wins
// over the config file.
func buildNoteStore(cfg driven.ConfigStore) (driven.NoteStore, error) {
	path := cli.VaultPath()
	if path == "" {
		path = cfg.GetString("vault.path")
	}
	if path == "" {
		return nil, fmt.Errorf("%w: set vault.path in %s or pass --vault",
			domain.ErrVaultNotConfigured, cfg.Path())
	}

	var opts []vault.Option
	if folder := cfg.GetString("vault.default_folder"); folder != "" {
		opts = append(opts, vault.WithDefaultFolder(folder))
	}
	return vault.New(path, opts...)
}

// buildParser applies any configured folder shortcuts on top of the
// defaults.
func buildParser(cfg driven.ConfigStore) *parser.Parser {
	shortcuts := cfg.StringsByPrefix("vault.shortcuts")
	if len(shortcuts) == 0 {
		return parser.New()
	}
	return parser.New(parser.WithShortcuts(shortcuts))
}

// buildRecognizer creates the Tesseract adapter. A missing Tesseract
// installation disables the recognition fallback rather than failing
// the whole run.
func buildRecognizer() driven.Recognizer {
	r, err := tesseract.New()
	if err != nil {
		logger.Warn("recognition unavailable: %v", err)
		return nil
	}
	recognizer = r
	return r
}

func buildMailSource(cfg driven.ConfigStore) (driven.MailSource, error) {
	credentials, token, err := resolveAuthPaths()
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	ts, err := gmail.TokenSource(ctx, credentials, token)
	if err != nil {
		return nil, fmt.Errorf("%w: run 'scribesync auth' first (%v)", domain.ErrAuthRequired, err)
	}

	gmailCfg := &gmail.Config{
		Query:      cfg.GetString("gmail.query"),
		MaxResults: int64(cfg.GetInt("gmail.max_results")),
	}
	return gmail.New(ctx, ts, gmailCfg)
}

// resolveAuthPaths returns the credentials and token file locations,
// defaulting to files inside the config directory.
func resolveAuthPaths() (string, string, error) {
	cfg, err := file.NewConfigStore(cli.ConfigDir())
	if err != nil {
		return "", "", fmt.Errorf("load config: %w", err)
	}

	dir := filepath.Dir(cfg.Path())

	credentials := cfg.GetString("gmail.credentials_file")
	if credentials == "" {
		credentials = filepath.Join(dir, "credentials.json")
	}

	token := cfg.GetString("gmail.token_file")
	if token == "" {
		token = filepath.Join(dir, "token.json")
	}

	return credentials, token, nil
}

// dataDir keeps the state database next to the config when --config is
// set, and in the default location otherwise.
func dataDir() string {
	if dir := cli.ConfigDir(); dir != "" {
		return filepath.Join(dir, "data")
	}
	return ""
}
