// Package config loads the agenda configuration from global and
// project YAML files, with project values overriding global ones.
package config

// Config is the full agenda configuration.
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Storage selects and locates the persistence backend.
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Server configures the board web server.
	Server ServerConfig `yaml:"server" mapstructure:"server"`
}

// StorageConfig locates the key-value backend the task store
// persists into.
type StorageConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `yaml:"backend" mapstructure:"backend"`
	// Path is the data directory for the file backend, or the
	// database file for the sqlite backend.
	Path string `yaml:"path" mapstructure:"path"`
	// Key is the storage key the state blob lives under.
	Key string `yaml:"key" mapstructure:"key"`
}

// ServerConfig configures `agenda serve`.
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}
