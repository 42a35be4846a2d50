package driven

// ConfigStore provides access to persisted ghmine settings.
// Keys use dot notation matching the TOML tables, e.g. "collect.output".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when absent or not a string.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 when absent or not an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false when absent or not a boolean.
	GetBool(key string) bool

	// GetStringSlice retrieves a string list, or nil when absent.
	GetStringSlice(key string) []string

	// Keys returns every key currently set, sorted.
	Keys() []string

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
