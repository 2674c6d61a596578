package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Storage: StorageConfig{
			Backend: "file",
			Path:    "~/.agenda/data",
			Key:     "agenda_semanal_v1",
		},
		Server: ServerConfig{
			Addr: "localhost:8742",
		},
	}
}

// WriteDefault writes the default configuration to a file, creating
// the parent directory if needed.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	header := []byte("# Agenda configuration\n# storage.backend: \"file\" or \"sqlite\"\n")
	return os.WriteFile(path, append(header, data...), 0644)
}
