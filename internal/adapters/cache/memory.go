package cache

import "slices"

// MemoryBackend is an in-memory ports.SettingsBackend.
// FlushErr and KeysErr let callers simulate an unavailable backing store.
type MemoryBackend struct {
	values   map[string]string
	FlushErr error
	KeysErr  error
	Flushes  int
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

// Get returns the value stored for key.
func (m *MemoryBackend) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key.
func (m *MemoryBackend) Set(key, value string) {
	m.values[key] = value
}

// Remove deletes key.
func (m *MemoryBackend) Remove(key string) {
	delete(m.values, key)
}

// Keys returns the stored keys in sorted order.
func (m *MemoryBackend) Keys() ([]string, error) {
	if m.KeysErr != nil {
		return nil, m.KeysErr
	}
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// Flush counts the call and returns FlushErr.
func (m *MemoryBackend) Flush() error {
	m.Flushes++
	return m.FlushErr
}
