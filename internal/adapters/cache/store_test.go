package cache_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/imagetool/internal/adapters/cache"
	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/imagetool/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newMemoryStore(t *testing.T) (*cache.Store, *cache.MemoryBackend, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	backend := cache.NewMemoryBackend()

	store, err := cache.NewStore(backend, filepath.Join(t.TempDir(), "cache"), log)
	require.NoError(t, err)
	return store, backend, log
}

func TestNewStore_SeedsCacheDir(t *testing.T) {
	defaultDir := filepath.Join(t.TempDir(), "home", "cache")
	backend := cache.NewMemoryBackend()

	store, err := cache.NewStore(backend, defaultDir, mocks.NewMockLogger(gomock.NewController(t)))
	require.NoError(t, err)

	assert.Equal(t, defaultDir, store.CacheDir())
	assert.Equal(t, 1, backend.Flushes)
	assert.DirExists(t, defaultDir)

	value, ok := backend.Get(domain.CacheDirKey)
	require.True(t, ok)
	assert.Equal(t, defaultDir, value)
}

func TestNewStore_KeepsExistingCacheDir(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "custom")
	backend := cache.NewMemoryBackend()
	backend.Set(domain.CacheDirKey, existing)

	store, err := cache.NewStore(backend, filepath.Join(t.TempDir(), "default"), mocks.NewMockLogger(gomock.NewController(t)))
	require.NoError(t, err)

	assert.Equal(t, existing, store.CacheDir())
	assert.Zero(t, backend.Flushes)
	assert.DirExists(t, existing)
}

func TestNewStore_SeedFlushFailure(t *testing.T) {
	backend := cache.NewMemoryBackend()
	backend.FlushErr = errors.New("read-only")

	_, err := cache.NewStore(backend, filepath.Join(t.TempDir(), "cache"), mocks.NewMockLogger(gomock.NewController(t)))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSettingsFlushFailed.Error())
}

func TestStore_PutGet(t *testing.T) {
	store, _, _ := newMemoryStore(t)

	ok, err := store.Put("wls_12.2.1.4.0", "/cache/fmw_12.2.1.4.0_wls.zip")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Put("JDK_8u202", "/cache/jdk-8u202-linux-x64.tar.gz")
	require.NoError(t, err)
	assert.True(t, ok)

	t.Run("distinct keys keep their values", func(t *testing.T) {
		got, found, err := store.Get("wls_12.2.1.4.0")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "/cache/fmw_12.2.1.4.0_wls.zip", got)

		got, found, err = store.Get("jdk_8u202")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "/cache/jdk-8u202-linux-x64.tar.gz", got)
	})

	t.Run("lookups ignore key case", func(t *testing.T) {
		lower, _, err := store.Get("jdk_8u202")
		require.NoError(t, err)
		upper, _, err := store.Get("JDK_8U202")
		require.NoError(t, err)
		assert.Equal(t, lower, upper)
	})

	t.Run("missing key", func(t *testing.T) {
		got, found, err := store.Get("missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, got)
	})

	t.Run("overwrite", func(t *testing.T) {
		_, err := store.Put("WLS_12.2.1.4.0", "/other.zip")
		require.NoError(t, err)
		got, _, err := store.Get("wls_12.2.1.4.0")
		require.NoError(t, err)
		assert.Equal(t, "/other.zip", got)
	})
}

func TestStore_InvalidArguments(t *testing.T) {
	store, _, _ := newMemoryStore(t)

	_, _, err := store.Get("")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = store.Put("", "value")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = store.Put("key", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, _, err = store.Delete("")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "key", zErr.Metadata()["argument"])
}

func TestStore_HasMatchingValue(t *testing.T) {
	store, _, _ := newMemoryStore(t)
	_, err := store.Put("Key", "Value")
	require.NoError(t, err)

	assert.True(t, store.HasMatchingValue("KEY", "Value"))
	assert.False(t, store.HasMatchingValue("key", "value"), "values compare case-sensitively")
	assert.False(t, store.HasMatchingValue("", "Value"))
	assert.False(t, store.HasMatchingValue("key", ""))
	assert.False(t, store.HasMatchingValue("other", "Value"))
}

func TestStore_Delete(t *testing.T) {
	store, backend, _ := newMemoryStore(t)
	_, err := store.Put("patch_1", "/cache/p1.zip")
	require.NoError(t, err)

	t.Run("returns previous value", func(t *testing.T) {
		old, found, err := store.Delete("PATCH_1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "/cache/p1.zip", old)

		_, found, err = store.Get("patch_1")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("missing key", func(t *testing.T) {
		flushes := backend.Flushes
		old, found, err := store.Delete("patch_1")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, old)
		assert.Equal(t, flushes, backend.Flushes)
	})

	t.Run("reserved cache dir key is kept", func(t *testing.T) {
		dir := store.CacheDir()
		for _, key := range []string{domain.CacheDirKey, "CACHE.DIR", "Cache.Dir"} {
			old, found, err := store.Delete(key)
			require.NoError(t, err)
			assert.False(t, found)
			assert.Empty(t, old)
		}
		assert.Equal(t, dir, store.CacheDir())
	})
}

func TestStore_PersistenceFailure(t *testing.T) {
	store, backend, log := newMemoryStore(t)
	backend.FlushErr = errors.New("disk full")
	log.EXPECT().Warn(gomock.Any()).Times(1)

	ok, err := store.Put("key", "value")
	require.NoError(t, err)
	assert.False(t, ok)

	got, found, err := store.Get("key")
	require.NoError(t, err)
	assert.True(t, found, "in-memory value must survive a failed flush")
	assert.Equal(t, "value", got)
}

func TestStore_Items(t *testing.T) {
	store, backend, log := newMemoryStore(t)
	_, err := store.Put("A", "1")
	require.NoError(t, err)
	_, err = store.Put("b", "2")
	require.NoError(t, err)

	items := store.Items()
	assert.Equal(t, map[string]string{
		"a":                "1",
		"b":                "2",
		domain.CacheDirKey: store.CacheDir(),
	}, items)

	t.Run("listing failure degrades to empty", func(t *testing.T) {
		backend.KeysErr = errors.New("backing store unavailable")
		log.EXPECT().Warn(gomock.Any()).Times(1)

		assert.Empty(t, store.Items())
	})
}

func TestStore_SetCacheDir(t *testing.T) {
	store, backend, log := newMemoryStore(t)
	current := store.CacheDir()

	assert.False(t, store.SetCacheDir(""))
	assert.False(t, store.SetCacheDir(current))

	newDir := filepath.Join(t.TempDir(), "moved")
	assert.True(t, store.SetCacheDir(newDir))
	assert.Equal(t, newDir, store.CacheDir())

	backend.FlushErr = errors.New("disk full")
	log.EXPECT().Warn(gomock.Any()).Times(1)
	assert.False(t, store.SetCacheDir(filepath.Join(newDir, "again")))
}

func TestStore_SetCacheDir_Concurrent(t *testing.T) {
	store, backend, _ := newMemoryStore(t)
	newDir := filepath.Join(t.TempDir(), "shared")
	flushesBefore := backend.Flushes

	var wg sync.WaitGroup
	var changed atomic.Int32
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.SetCacheDir(newDir) {
				changed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), changed.Load(), "only one caller changes the directory")
	assert.Equal(t, flushesBefore+1, backend.Flushes)
	assert.Equal(t, newDir, store.CacheDir())
}

func TestStore_RestartRoundTrip(t *testing.T) {
	home := t.TempDir()
	settings := domain.DefaultSettingsPath(home)
	log := mocks.NewMockLogger(gomock.NewController(t))

	backend1, err := cache.NewPropertiesBackend(settings)
	require.NoError(t, err)
	store1, err := cache.NewStore(backend1, domain.DefaultCacheDir(home), log)
	require.NoError(t, err)

	ok, err := store1.Put("WLS_14.1.1.0.0", "/cache/wls with spaces.zip")
	require.NoError(t, err)
	require.True(t, ok)
	_, err = store1.Put("literal", "${not_expanded}")
	require.NoError(t, err)

	got, _, err := store1.Get("wls_14.1.1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "/cache/wls with spaces.zip", got)

	// A fresh process reads the same settings file.
	backend2, err := cache.NewPropertiesBackend(settings)
	require.NoError(t, err)
	store2, err := cache.NewStore(backend2, filepath.Join(home, "unused"), log)
	require.NoError(t, err)

	got, found, err := store2.Get("wls_14.1.1.0.0")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "/cache/wls with spaces.zip", got)

	got, _, err = store2.Get("literal")
	require.NoError(t, err)
	assert.Equal(t, "${not_expanded}", got)

	assert.Equal(t, domain.DefaultCacheDir(home), store2.CacheDir())
	_, err = os.Stat(filepath.Join(home, "unused"))
	assert.True(t, os.IsNotExist(err), "default dir must not be used once seeded")
}
