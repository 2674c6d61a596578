// Package kv provides the key-value persistence capability the task
// store serializes into: a single string blob under a fixed key. Two
// backends exist, a JSON-file directory and a SQLite database.
package kv

// Store is a minimal string key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set writes the value for key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases backend resources.
	Close() error
}
