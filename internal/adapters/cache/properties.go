package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/magiconair/properties"
	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/imagetool/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SettingsBackend = (*PropertiesBackend)(nil)

// PropertiesBackend implements ports.SettingsBackend with a Java-style properties file.
// Changes made since the last flush are kept as pending edits so a flush merges them into
// whatever other processes wrote in the meantime.
type PropertiesBackend struct {
	path    string
	props   *properties.Properties
	pending map[string]*string // nil value marks a removal
}

// NewPropertiesBackend loads the properties file at path. A missing file yields an empty node.
func NewPropertiesBackend(path string) (*PropertiesBackend, error) {
	b := &PropertiesBackend{
		path:    filepath.Clean(path),
		pending: make(map[string]*string),
	}
	props, err := b.read()
	if err != nil {
		return nil, err
	}
	b.props = props
	return b, nil
}

// Path returns the location of the backing file.
func (b *PropertiesBackend) Path() string {
	return b.path
}

func (b *PropertiesBackend) read() (*properties.Properties, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newProperties(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", b.path)
	}

	// Values are artifact paths; ${...} in them is literal text.
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", b.path)
	}
	return props, nil
}

// Get returns the value stored for key.
func (b *PropertiesBackend) Get(key string) (string, bool) {
	return b.props.Get(key)
}

// Set stores value under key.
func (b *PropertiesBackend) Set(key, value string) {
	// Set only fails on circular references, which cannot occur with expansion disabled.
	_, _, _ = b.props.Set(key, value)
	b.pending[key] = &value
}

// Remove deletes key.
func (b *PropertiesBackend) Remove(key string) {
	b.props.Delete(key)
	b.pending[key] = nil
}

// Keys returns the stored keys in insertion order.
func (b *PropertiesBackend) Keys() ([]string, error) {
	return b.props.Keys(), nil
}

// Flush merges the pending edits into the file on disk. While holding an exclusive lock it
// reloads the file, applies this backend's sets and removals, and atomically replaces the
// file, so entries flushed by other imagetool processes are kept.
// On failure the pending edits stay queued for the next flush.
func (b *PropertiesBackend) Flush() error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsFlushFailed.Error()), "path", dir)
	}

	unlock, err := lockFile(b.path + ".lock")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsLockFailed.Error()), "path", b.path)
	}
	defer unlock()

	merged, err := b.read()
	if err != nil {
		return err
	}
	for key, value := range b.pending {
		if value == nil {
			merged.Delete(key)
			continue
		}
		_, _, _ = merged.Set(key, *value)
	}

	tmp, err := os.CreateTemp(dir, ".cache-*.properties")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsFlushFailed.Error()), "path", dir)
	}
	tmpName := tmp.Name()

	if _, err := merged.Write(tmp, properties.UTF8); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsFlushFailed.Error()), "path", b.path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsFlushFailed.Error()), "path", b.path)
	}

	if err := os.Rename(tmpName, b.path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsFlushFailed.Error()), "path", b.path)
	}

	b.props = merged
	clear(b.pending)
	return nil
}

func newProperties() *properties.Properties {
	p := properties.NewProperties()
	p.DisableExpansion = true
	return p
}
