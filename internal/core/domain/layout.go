package domain

import "path/filepath"

const (
	// Namespace identifies the settings node owned by imagetool.
	Namespace = "imagetool"

	// SettingsDirName is the per-user directory holding the settings of Namespace.
	SettingsDirName = "." + Namespace

	// SettingsFileName is the name of the cache settings file.
	SettingsFileName = "cache.properties"

	// CacheDirName is the name of the default cache directory under the user's home.
	CacheDirName = "cache"

	// CacheDirKey is the reserved cache key holding the cache root directory.
	CacheDirKey = "cache.dir"

	// FilesDirName is the staging subdirectory of the build working directory.
	FilesDirName = "files"

	// BuildFileName is the default name of the build file.
	BuildFileName = "imagetool.yaml"

	// WorkDirPrefix prefixes generated build working directory names.
	WorkDirPrefix = "imagetool-"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCacheDir returns the default cache root for the given home directory.
func DefaultCacheDir(home string) string {
	return filepath.Join(home, CacheDirName)
}

// DefaultSettingsPath returns the default cache settings file for the given home directory.
// It joins .imagetool and cache.properties.
func DefaultSettingsPath(home string) string {
	return filepath.Join(home, SettingsDirName, SettingsFileName)
}

// FilesDir returns the directory additional build files are copied into.
func FilesDir(workDir string) string {
	return filepath.Join(workDir, FilesDirName)
}
