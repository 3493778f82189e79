package domain

// NoteRecord is one parsed unit of content, ready for persistence.
// It is created by the note parser and never mutated afterwards.
type NoteRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// Title is the human-readable short label. Derived from the first
	// line of the body (truncated to 50 characters) unless an explicit
	// Title: directive was present.
	Title string

	// Body is the cleaned note text: soft-wrapped lines rejoined,
	// whitespace collapsed, directives stripped.
	Body string

	// Folder is the logical routing destination. Empty means "use the
	// configured default destination".
	Folder string

	// Source is the label of the originating document. Propagated,
	// never interpreted.
	Source string

	// Ordinal is the 1-based position of this record within its source
	// document, counted over all split chunks (including chunks later
	// discarded as too short).
	Ordinal int
}
