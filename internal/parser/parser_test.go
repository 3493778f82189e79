package parser

import (
	"strings"
	"testing"
)

func TestParse_PageArtifactsAndSplit(t *testing.T) {
	p := New()

	input := "Page 1\nHello world\n\n\nThis is a test."
	records := p.Parse(input, "My Export")

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if records[0].Title != "Hello world" {
		t.Errorf("expected title %q, got %q", "Hello world", records[0].Title)
	}
	if records[0].Body != "Hello world" {
		t.Errorf("expected body %q, got %q", "Hello world", records[0].Body)
	}
	if records[1].Title != "This is a test." {
		t.Errorf("expected title %q, got %q", "This is a test.", records[1].Title)
	}
	if records[0].Ordinal != 1 || records[1].Ordinal != 2 {
		t.Errorf("expected ordinals 1,2 got %d,%d", records[0].Ordinal, records[1].Ordinal)
	}
	for _, r := range records {
		if r.Source != "My Export" {
			t.Errorf("expected source label propagated, got %q", r.Source)
		}
		if strings.Contains(r.Body, "Page 1") {
			t.Errorf("page artifact leaked into body: %q", r.Body)
		}
	}
}

func TestParse_FolderTagAndRejoin(t *testing.T) {
	p := New()

	input := "#fiction\nA tale\nof two lines\n\n\nAnother note here."
	records := p.Parse(input, "src")

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Folder != "2 - Fiction" {
		t.Errorf("expected fiction shortcut resolved, got %q", first.Folder)
	}
	if first.Title != "A tale" {
		t.Errorf("expected title %q, got %q", "A tale", first.Title)
	}
	// "A tale" lacks terminal punctuation and is not the last line,
	// so the wrap is rejoined with a space.
	if first.Body != "A tale of two lines" {
		t.Errorf("expected rejoined body, got %q", first.Body)
	}

	// Folder state must not leak into the next chunk.
	if records[1].Folder != "" {
		t.Errorf("expected empty folder on second record, got %q", records[1].Folder)
	}
}

func TestParse_FolderTagVariants(t *testing.T) {
	p := New()

	tests := []struct {
		name   string
		input  string
		folder string
	}{
		{"shortcut", "#nonfiction\nSome note content here.", "3 - Nonfiction"},
		{"uppercase shortcut", "#FICTION\nSome note content here.", "2 - Fiction"},
		{"space after hash", "# personal\nSome note content here.", "1 - Personal"},
		{"unknown word used literally", "#recipes\nSome note content here.", "recipes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := p.Parse(tt.input, "src")
			if len(records) != 1 {
				t.Fatalf("expected 1 record, got %d", len(records))
			}
			if records[0].Folder != tt.folder {
				t.Errorf("expected folder %q, got %q", tt.folder, records[0].Folder)
			}
			if strings.Contains(records[0].Body, "#") {
				t.Errorf("tag directive leaked into body: %q", records[0].Body)
			}
		})
	}
}

func TestParse_FolderPrefix(t *testing.T) {
	p := New()

	records := p.Parse("Folder: Projects\nContent of the note goes here.", "src")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Folder != "Projects" {
		t.Errorf("expected literal folder, got %q", records[0].Folder)
	}

	// Prefix values go through the same shorthand lookup as tags.
	records = p.Parse("folder: FICTION\nContent of the note goes here.", "src")
	if records[0].Folder != "2 - Fiction" {
		t.Errorf("expected shortcut resolved, got %q", records[0].Folder)
	}
}

func TestParse_FolderPrefixOverridesTag(t *testing.T) {
	p := New()

	input := "#personal\nFolder: fiction\nTitle: Override\nActual body text here."
	records := p.Parse(input, "src")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.Folder != "2 - Fiction" {
		t.Errorf("expected Folder: to override the tag, got %q", r.Folder)
	}
	if r.Title != "Override" {
		t.Errorf("expected explicit title, got %q", r.Title)
	}
	if r.Body != "Actual body text here." {
		t.Errorf("expected directives stripped from body, got %q", r.Body)
	}
}

func TestParse_TitleDirective(t *testing.T) {
	p := New()

	records := p.Parse("Title: My Idea\nSome content.\n", "src")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Title != "My Idea" {
		t.Errorf("expected title %q, got %q", "My Idea", records[0].Title)
	}
	if records[0].Body != "Some content." {
		t.Errorf("expected body %q, got %q", "Some content.", records[0].Body)
	}
}

func TestParse_MalformedDirectiveIsContent(t *testing.T) {
	p := New()

	// An empty capture is no directive at all: the line stays in the body.
	records := p.Parse("Folder:\nJust some regular content here.", "src")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Folder != "" {
		t.Errorf("expected no folder, got %q", records[0].Folder)
	}
	if !strings.Contains(records[0].Body, "Folder:") {
		t.Errorf("unmatched directive line should remain in body, got %q", records[0].Body)
	}
}

func TestParse_ChunkLengthBoundary(t *testing.T) {
	p := New()

	// Exactly 11 characters: kept.
	if got := p.Parse("Hello there", "src"); len(got) != 1 {
		t.Errorf("expected 11-char chunk kept, got %d records", len(got))
	}
	// Exactly 10 characters: dropped.
	if got := p.Parse("Hello ther", "src"); len(got) != 0 {
		t.Errorf("expected 10-char chunk dropped, got %d records", len(got))
	}
	// The threshold counts characters, not bytes: 10 runes but 11 bytes.
	if got := p.Parse("héllo ther", "src"); len(got) != 0 {
		t.Errorf("expected 10-rune chunk dropped, got %d records", len(got))
	}
	if got := p.Parse("héllo there", "src"); len(got) != 1 {
		t.Errorf("expected 11-rune chunk kept, got %d records", len(got))
	}
}

func TestParse_OrdinalCountsDroppedChunks(t *testing.T) {
	p := New()

	input := "First real note here.\n\n\nshort\n\n\nSecond real note here."
	records := p.Parse(input, "src")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// The dropped middle chunk still consumes position 2.
	if records[0].Ordinal != 1 || records[1].Ordinal != 3 {
		t.Errorf("expected ordinals 1,3 got %d,%d", records[0].Ordinal, records[1].Ordinal)
	}
}

func TestParse_TitleTruncation(t *testing.T) {
	p := New()

	firstLine := strings.Repeat("a", 60)
	records := p.Parse(firstLine+"\nand a second line.", "src")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if len(records[0].Title) != 50 {
		t.Errorf("expected 50-char title, got %d chars", len(records[0].Title))
	}

	// Explicit titles are taken verbatim, never truncated.
	records = p.Parse("Title: "+firstLine+"\nBody of the note.", "src")
	if records[0].Title != firstLine {
		t.Errorf("expected explicit title untruncated, got %d chars", len(records[0].Title))
	}
}

func TestParse_Deterministic(t *testing.T) {
	p := New()
	input := "#fiction\nA tale\nof two lines\n\n\ntiny\n\n\nTitle: Last\nClosing thought."

	a := p.Parse(input, "src")
	b := p.Parse(input, "src")

	if len(a) != len(b) {
		t.Fatalf("record counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Title != b[i].Title || a[i].Body != b[i].Body ||
			a[i].Folder != b[i].Folder || a[i].Ordinal != b[i].Ordinal ||
			a[i].Source != b[i].Source {
			t.Errorf("record %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestParse_EmptyAndGarbageInput(t *testing.T) {
	p := New()

	if got := p.Parse("", "src"); len(got) != 0 {
		t.Errorf("expected no records for empty input, got %d", len(got))
	}
	if got := p.Parse("   \n\n  \n ", "src"); len(got) != 0 {
		t.Errorf("expected no records for whitespace input, got %d", len(got))
	}
}

func TestParse_CustomShortcuts(t *testing.T) {
	p := New(WithShortcuts(map[string]string{"Work": "9 - Work"}))

	records := p.Parse("#work\nMeeting notes from today.", "src")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Folder != "9 - Work" {
		t.Errorf("expected custom shortcut resolved, got %q", records[0].Folder)
	}

	// Custom tables replace the defaults entirely.
	records = p.Parse("#fiction\nSome other note content.", "src")
	if records[0].Folder != "fiction" {
		t.Errorf("expected literal fallback with custom table, got %q", records[0].Folder)
	}
}

func TestCleanBody_Rejoin(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"soft wrap joined", "A tale\nof two lines", "A tale of two lines"},
		{"punctuated break kept", "First line.\nSecond line", "First line.\nSecond line"},
		{"comma keeps break", "one,\ntwo", "one,\ntwo"},
		{"spaces collapsed", "too  many   spaces.", "too many spaces."},
		{"blank runs collapsed", "One.\n\n\n\nTwo.", "One.\n\nTwo."},
		{"whitespace-only line inside wrap", "foo\n \nbar", "foo bar"},
		{"whitespace-only line after sentence", "foo.\n \nbar", "foo.\n\nbar"},
		{"trimmed", "  padded.  ", "padded."},
		{"single line", "Hello world", "Hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanBody(tt.input); got != tt.want {
				t.Errorf("CleanBody(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanBody_Idempotent(t *testing.T) {
	inputs := []string{
		"A tale\nof two lines",
		"First line.\nSecond line",
		"One.\n\n\n\nTwo.",
		"wrapped text\nthat continues\nover three lines.",
		"foo\n \nbar",
		"foo.\n \nbar\n \nbaz",
		"",
	}

	for _, input := range inputs {
		once := CleanBody(input)
		twice := CleanBody(once)
		if once != twice {
			t.Errorf("CleanBody not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
