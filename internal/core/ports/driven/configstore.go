package driven

// ConfigStore provides persistent key-value configuration. Keys use
// dot notation, e.g. "vault.path" or "gmail.query".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	GetBool(key string) bool

	// StringsByPrefix returns every string value whose key starts with
	// prefix, keyed by the remainder after the prefix.
	StringsByPrefix(prefix string) map[string]string

	// Set stores a configuration value and persists immediately.
	Set(key string, value any) error

	// Path returns the location of the backing store.
	Path() string
}
