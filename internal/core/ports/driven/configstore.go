package driven

// ConfigStore provides access to persisted application configuration.
// Keys use dot notation, e.g. "qa.provider".
type ConfigStore interface {
	// Get retrieves a raw value and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns a string value, or "" if missing or not a string.
	GetString(key string) string

	// GetInt returns an integer value, or 0 if missing or not numeric.
	GetInt(key string) int

	// GetFloat returns a float value, or 0 if missing or not numeric.
	GetFloat(key string) float64

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Unset removes a key and persists immediately.
	Unset(key string) error

	// Keys returns all keys in sorted order.
	Keys() []string

	// Load re-reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
