package domain

// ExportKind identifies how an export email carries its document.
type ExportKind int

const (
	// ExportNone means the message carried no recognisable document.
	ExportNone ExportKind = iota

	// ExportPDF means the document arrived as a PDF attachment.
	ExportPDF

	// ExportLinks means the message carried one or more download links.
	ExportLinks
)

// Export is the document payload recovered from a single export email,
// before any text recovery has run.
type Export struct {
	// Kind says which of Data or Links is populated.
	Kind ExportKind

	// Data holds the raw attachment bytes for ExportPDF.
	Data []byte

	// Links holds download URLs for ExportLinks.
	Links []string

	// Filename is the attachment file name, if any.
	Filename string

	// Subject is the email subject, used as the source label for
	// parsed notes.
	Subject string
}

// MessageRef identifies a candidate export email.
type MessageRef struct {
	// ID is the provider-side message identifier.
	ID string
}
