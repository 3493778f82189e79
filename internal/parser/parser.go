// Package parser splits recovered document text into discrete note
// records: chunks bounded by blank-line runs, with optional leading
// directives for routing and titling, and soft-wrapped lines rejoined
// into continuous prose.
package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mindgarden-labs/scribesync/internal/core/domain"
)

// minChunkLength is the noise threshold: chunks whose trimmed length is
// at or below it produce no record.
const minChunkLength = 10

// maxTitleLength is the truncation point for titles inferred from the
// first content line. Explicit Title: directives are never truncated.
const maxTitleLength = 50

// DefaultShortcuts maps folder shorthand words to vault destinations.
// Unknown words are used literally as the destination name.
var DefaultShortcuts = map[string]string{
	"personal":   "1 - Personal",
	"fiction":    "2 - Fiction",
	"nonfiction": "3 - Nonfiction",
}

var (
	// "Page <n>" artifacts left behind by the export renderer,
	// together with any blank lines that follow them.
	pageArtifacts = regexp.MustCompile(`Page \d+\s*\n`)

	// Chunk boundary: a run of two or more newlines.
	chunkBoundary = regexp.MustCompile(`\n{2,}`)

	spaceRuns   = regexp.MustCompile(` {2,}`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)

	terminalPunctuation = ".!?:;,"
)

// Parser turns recovered text into ordered note records.
// Parsing is pure and deterministic apart from record IDs: the same
// input always yields the same titles, bodies, folders and ordinals.
type Parser struct {
	shortcuts map[string]string
}

// Option configures the parser.
type Option func(*Parser)

// WithShortcuts replaces the folder shorthand table. Keys are matched
// case-insensitively.
func WithShortcuts(shortcuts map[string]string) Option {
	return func(p *Parser) {
		if shortcuts == nil {
			return
		}
		p.shortcuts = make(map[string]string, len(shortcuts))
		for k, v := range shortcuts {
			p.shortcuts[strings.ToLower(k)] = v
		}
	}
}

// New creates a parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{shortcuts: DefaultShortcuts}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse splits text into note records. sourceLabel is propagated onto
// every record. Parsing never fails: directive-free or structureless
// input degrades to whole-chunk notes, and empty input yields nothing.
func (p *Parser) Parse(text, sourceLabel string) []domain.NoteRecord {
	text = pageArtifacts.ReplaceAllString(text, "")
	chunks := chunkBoundary.Split(text, -1)

	var records []domain.NoteRecord
	for i, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if utf8.RuneCountInString(chunk) <= minChunkLength {
			// Noise chunk. It still consumes its ordinal so record
			// positions stay stable for a given input.
			continue
		}
		records = append(records, p.parseChunk(chunk, sourceLabel, i+1))
	}
	return records
}

// parseChunk extracts directives from one chunk and builds its record.
func (p *Parser) parseChunk(chunk, sourceLabel string, ordinal int) domain.NoteRecord {
	content := chunk
	folder := ""
	title := ""

	if word, rest, ok := folderTagRule.apply(content); ok {
		folder = p.resolveFolder(word)
		content = rest
	}
	if value, rest, ok := folderPrefixRule.apply(content); ok {
		folder = p.resolveFolder(value)
		content = rest
	}
	if value, rest, ok := titlePrefixRule.apply(content); ok {
		title = value
		content = rest
	}

	if title == "" {
		firstLine, _, _ := strings.Cut(content, "\n")
		title = truncate(firstLine, maxTitleLength)
	}

	return domain.NoteRecord{
		ID:      uuid.New().String(),
		Title:   title,
		Body:    CleanBody(content),
		Folder:  folder,
		Source:  sourceLabel,
		Ordinal: ordinal,
	}
}

// resolveFolder looks the captured word up in the shorthand table,
// falling back to the literal word.
func (p *Parser) resolveFolder(raw string) string {
	if dest, ok := p.shortcuts[strings.ToLower(raw)]; ok {
		return dest
	}
	return raw
}

// CleanBody re-flows soft-wrapped source lines into continuous prose.
// A non-blank line that does not end in terminal punctuation and is not
// the last line was wrapped by the export renderer, so its line break
// becomes a single space. Punctuated and final lines keep their breaks.
// A whitespace-only line keeps a break only after a completed sentence;
// inside wrapped prose it contributes nothing, so the rejoin space
// survives. Space runs collapse to one, blank-line runs to a single
// blank line. CleanBody is idempotent on its own output: every break it
// emits follows terminal punctuation, so a second pass keeps them all.
func CleanBody(content string) string {
	lines := strings.Split(content, "\n")
	var b strings.Builder
	punctuated := false
	for i, line := range lines {
		line = strings.TrimSpace(line)
		last := i == len(lines)-1
		switch {
		case line == "":
			if punctuated {
				b.WriteString("\n")
			}
		case last:
			b.WriteString(line)
		case endsWithTerminal(line):
			b.WriteString(line)
			b.WriteString("\n")
			punctuated = true
		default:
			b.WriteString(line)
			b.WriteString(" ")
			punctuated = false
		}
	}

	body := b.String()
	body = spaceRuns.ReplaceAllString(body, " ")
	body = newlineRuns.ReplaceAllString(body, "\n\n")
	return strings.TrimSpace(body)
}

// endsWithTerminal reports whether the line ends in sentence-terminal
// punctuation.
func endsWithTerminal(line string) bool {
	return strings.ContainsAny(line[len(line)-1:], terminalPunctuation)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
