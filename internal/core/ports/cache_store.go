// Package ports defines the core interfaces for the application.
package ports

// CacheStore defines the persistent, case-insensitive key/value cache of resolved artifacts.
//
//go:generate mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// CacheDir returns the cache root directory.
	CacheDir() string

	// Get returns the value stored for key and whether it was present.
	// It fails with domain.ErrInvalidArgument if key is empty.
	Get(key string) (string, bool, error)

	// HasMatchingValue reports whether key is stored with exactly value.
	HasMatchingValue(key, value string) bool

	// Put stores value under key and reports whether it was persisted.
	// A persistence failure keeps the in-memory value and returns false with a nil error.
	Put(key, value string) (bool, error)

	// Delete removes key and returns the previous value, if any.
	// The reserved cache directory key is never removed.
	Delete(key string) (string, bool, error)

	// Items returns every stored entry.
	Items() map[string]string

	// SetCacheDir changes the cache root directory and reports whether it was persisted.
	SetCacheDir(path string) bool
}

// SettingsBackend is the persisted string to string settings node a CacheStore writes through.
type SettingsBackend interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
	Keys() ([]string, error)
	Flush() error
}
