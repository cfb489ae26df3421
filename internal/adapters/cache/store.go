// Package cache implements the persistent cache of resolved artifact locations.
package cache

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/imagetool/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore on top of a settings backend.
// Keys are case-insensitive; every mutation is flushed before the call returns.
type Store struct {
	mu         sync.Mutex
	backend    ports.SettingsBackend
	defaultDir string
	logger     ports.Logger
}

// NewStore creates a Store over backend. On first use it seeds the cache directory key
// with defaultDir, then makes sure the cache directory exists.
func NewStore(backend ports.SettingsBackend, defaultDir string, logger ports.Logger) (*Store, error) {
	s := &Store{
		backend:    backend,
		defaultDir: defaultDir,
		logger:     logger,
	}

	if _, ok := backend.Get(domain.CacheDirKey); !ok {
		backend.Set(domain.CacheDirKey, defaultDir)
		if err := backend.Flush(); err != nil {
			return nil, zerr.Wrap(err, domain.ErrSettingsFlushFailed.Error())
		}
	}

	dir := s.CacheDir()
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", dir)
	}

	return s, nil
}

// CacheDir returns the cache root directory.
func (s *Store) CacheDir() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cacheDir()
}

// cacheDir returns the cache root directory. Callers must hold s.mu.
func (s *Store) cacheDir() string {
	if dir, ok := s.backend.Get(domain.CacheDirKey); ok {
		return dir
	}
	return s.defaultDir
}

// Get returns the value stored for key.
func (s *Store) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "cache key must not be empty"), "argument", "key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.backend.Get(normalize(key))
	return value, ok, nil
}

// HasMatchingValue reports whether key is stored with exactly value.
func (s *Store) HasMatchingValue(key, value string) bool {
	if key == "" || value == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.backend.Get(normalize(key))
	return ok && stored == value
}

// Put stores value under key and reports whether it reached the backing store.
func (s *Store) Put(key, value string) (bool, error) {
	if key == "" {
		return false, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "cache key must not be empty"), "argument", "key")
	}
	if value == "" {
		return false, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "cache value must not be empty"), "argument", "value")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.backend.Set(normalize(key), value)
	return s.persist(), nil
}

// Delete removes key and returns its previous value.
// The cache directory key is reserved and is never removed.
func (s *Store) Delete(key string) (string, bool, error) {
	if key == "" {
		return "", false, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "cache key must not be empty"), "argument", "key")
	}

	key = normalize(key)
	if key == domain.CacheDirKey {
		return "", false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.backend.Get(key)
	if !ok {
		return "", false, nil
	}
	s.backend.Remove(key)
	s.persist()

	return old, true, nil
}

// Items returns a copy of every stored entry.
// A failure to list the backing store yields an empty map.
func (s *Store) Items() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.backend.Keys()
	if err != nil {
		s.logger.Warn(fmt.Sprintf("unable to list cache entries: %v", err))
		return map[string]string{}
	}

	items := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := s.backend.Get(k); ok {
			items[k] = v
		}
	}
	return items
}

// SetCacheDir changes the cache root directory.
// It returns false without writing when path is empty or already current.
func (s *Store) SetCacheDir(path string) bool {
	if path == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if path == s.cacheDir() {
		return false
	}
	s.backend.Set(domain.CacheDirKey, path)
	return s.persist()
}

// persist flushes the backend. Callers must hold s.mu.
func (s *Store) persist() bool {
	if err := s.backend.Flush(); err != nil {
		s.logger.Warn(fmt.Sprintf("cache change kept in memory but not persisted: %v", err))
		return false
	}
	return true
}

func normalize(key string) string {
	return strings.ToLower(key)
}
