package driven

// ConfigStore persists user configuration as key-value pairs.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	GetInt(key string) int

	// Set stores a configuration value.
	Set(key string, value any) error

	// Delete removes a configuration value.
	Delete(key string) error

	// Load reads configuration from the backing store.
	Load() error

	// Save writes configuration to the backing store.
	Save() error
}
