// Package gmail syncs notebook export emails out of a Gmail mailbox.
package gmail

// DefaultQuery matches the sharing emails Amazon sends when a notebook
// is exported from the device.
const DefaultQuery = `from:do-not-reply@amazon.com (subject:notebook OR subject:kindle OR "sent a file")`

// Config holds Gmail connector configuration.
type Config struct {
	// Query is the Gmail search query used to find export emails.
	Query string
	// MaxResults is the page size for API requests.
	MaxResults int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Query:      DefaultQuery,
		MaxResults: 50,
	}
}

// normalise fills in defaults for zero-valued fields.
func (c *Config) normalise() {
	if c.Query == "" {
		c.Query = DefaultQuery
	}
	if c.MaxResults <= 0 {
		c.MaxResults = 50
	}
}
