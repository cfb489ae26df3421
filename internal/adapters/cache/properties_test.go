package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/imagetool/internal/adapters/cache"
	"go.trai.ch/imagetool/internal/core/domain"
)

func TestPropertiesBackend_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.properties")

	b, err := cache.NewPropertiesBackend(path)
	require.NoError(t, err)
	assert.Equal(t, path, b.Path())

	keys, err := b.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, ok := b.Get("anything")
	assert.False(t, ok)
}

func TestPropertiesBackend_FlushAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings", "cache.properties")

	b, err := cache.NewPropertiesBackend(path)
	require.NoError(t, err)

	b.Set("wls_12.2.1.4.0", `C:\cache\wls.zip`)
	b.Set("jdk_8u202", "/cache/jdk=8u202.tar.gz")
	b.Set("gone", "soon")
	b.Remove("gone")
	require.NoError(t, b.Flush())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	reloaded, err := cache.NewPropertiesBackend(path)
	require.NoError(t, err)

	got, ok := reloaded.Get("wls_12.2.1.4.0")
	require.True(t, ok)
	assert.Equal(t, `C:\cache\wls.zip`, got)

	got, ok = reloaded.Get("jdk_8u202")
	require.True(t, ok)
	assert.Equal(t, "/cache/jdk=8u202.tar.gz", got)

	_, ok = reloaded.Get("gone")
	assert.False(t, ok)

	keys, err := reloaded.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"wls_12.2.1.4.0", "jdk_8u202"}, keys)
}

func TestPropertiesBackend_FlushLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.properties")

	b, err := cache.NewPropertiesBackend(path)
	require.NoError(t, err)
	b.Set("key", "value")
	require.NoError(t, b.Flush())
	require.NoError(t, b.Flush())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".cache-", "temporary file %s left behind", e.Name())
	}
}

func TestPropertiesBackend_ReadsHandWrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.properties")
	content := "# written by hand\ncache.dir=/opt/cache\nwls_14.1.1.0.0 = /opt/cache/wls.zip\n"
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))

	b, err := cache.NewPropertiesBackend(path)
	require.NoError(t, err)

	got, ok := b.Get(domain.CacheDirKey)
	require.True(t, ok)
	assert.Equal(t, "/opt/cache", got)

	got, ok = b.Get("wls_14.1.1.0.0")
	require.True(t, ok)
	assert.Equal(t, "/opt/cache/wls.zip", got)
}

func TestPropertiesBackend_UnreadableFile(t *testing.T) {
	// A directory in place of the settings file cannot be read.
	path := t.TempDir()

	_, err := cache.NewPropertiesBackend(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSettingsReadFailed.Error())
}

func TestPropertiesBackend_FlushKeepsEntriesFromOtherProcesses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.properties")

	first, err := cache.NewPropertiesBackend(path)
	require.NoError(t, err)
	second, err := cache.NewPropertiesBackend(path)
	require.NoError(t, err)

	first.Set("wls", "/cache/wls.zip")
	first.Set("stale", "old")
	require.NoError(t, first.Flush())

	second.Set("jdk", "/cache/jdk.tar.gz")
	second.Remove("stale")
	require.NoError(t, second.Flush())

	reloaded, err := cache.NewPropertiesBackend(path)
	require.NoError(t, err)

	got, ok := reloaded.Get("wls")
	require.True(t, ok, "entry flushed by the first backend was lost")
	assert.Equal(t, "/cache/wls.zip", got)

	got, ok = reloaded.Get("jdk")
	require.True(t, ok)
	assert.Equal(t, "/cache/jdk.tar.gz", got)

	_, ok = reloaded.Get("stale")
	assert.False(t, ok)

	// The second backend sees the merged state after its flush.
	got, ok = second.Get("wls")
	require.True(t, ok)
	assert.Equal(t, "/cache/wls.zip", got)
}

func TestPropertiesBackend_FlushReappliesOnlyPendingEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.properties")

	first, err := cache.NewPropertiesBackend(path)
	require.NoError(t, err)
	first.Set("shared", "first")
	require.NoError(t, first.Flush())

	second, err := cache.NewPropertiesBackend(path)
	require.NoError(t, err)
	second.Set("shared", "second")
	require.NoError(t, second.Flush())

	// Flushing an unrelated edit must not write back the first backend's stale value.
	first.Set("other", "x")
	require.NoError(t, first.Flush())

	reloaded, err := cache.NewPropertiesBackend(path)
	require.NoError(t, err)
	got, ok := reloaded.Get("shared")
	require.True(t, ok)
	assert.Equal(t, "second", got)
}
