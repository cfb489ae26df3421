package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArgument is returned when a required key, value or path is empty.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrCacheDirCreateFailed is returned when the cache root directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrSettingsReadFailed is returned when the cache settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read cache settings")

	// ErrSettingsParseFailed is returned when the cache settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse cache settings")

	// ErrSettingsFlushFailed is returned when the cache settings cannot be written to disk.
	ErrSettingsFlushFailed = zerr.New("failed to flush cache settings")

	// ErrSettingsLockFailed is returned when the settings lock file cannot be acquired.
	ErrSettingsLockFailed = zerr.New("failed to lock cache settings")

	// ErrCommandsFileRead is returned when the additional build commands file cannot be read.
	ErrCommandsFileRead = zerr.New("failed to read additional build commands file")

	// ErrUnknownSectionTag is returned when a section marker names a tag outside the known set.
	ErrUnknownSectionTag = zerr.New("unknown section in additional build commands")

	// ErrCommandOutsideSection is returned when a command appears before any section marker.
	ErrCommandOutsideSection = zerr.New("command found outside any section")

	// ErrWorkDirCreateFailed is returned when the build working directory cannot be created.
	ErrWorkDirCreateFailed = zerr.New("failed to create build working directory")

	// ErrSourceNotFound is returned when an additional build file source does not exist.
	ErrSourceNotFound = zerr.New("additional build file not found")

	// ErrFileCopyFailed is returned when an additional build file cannot be copied.
	ErrFileCopyFailed = zerr.New("failed to copy additional build file")

	// ErrFileCollision is returned when two sources map to the same destination under files/.
	ErrFileCollision = zerr.New("additional build files collide on destination")

	// ErrPathEscapesRoot is returned when a destination would land outside the files/ root.
	ErrPathEscapesRoot = zerr.New("destination escapes build files directory")

	// ErrFileHashFailed is returned when hashing a copied file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrTemplateRead is returned when a template file cannot be read.
	ErrTemplateRead = zerr.New("failed to read template file")

	// ErrTemplateWrite is returned when a resolved template file cannot be written.
	ErrTemplateWrite = zerr.New("failed to write resolved template file")

	// ErrConfigNotFound is returned when the build file cannot be found.
	ErrConfigNotFound = zerr.New("could not find build file")

	// ErrConfigReadFailed is returned when the build file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read build file")

	// ErrConfigParseFailed is returned when the build file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse build file")

	// ErrOptionsFileFailed is returned when a KEY=VALUE options file cannot be loaded.
	ErrOptionsFileFailed = zerr.New("failed to load options file")

	// ErrInvalidChown is returned when a chown value is not in user:group form.
	ErrInvalidChown = zerr.New("invalid chown value, expected user:group")

	// ErrPrepareFailed is returned when the build context could not be prepared.
	ErrPrepareFailed = zerr.New("failed to prepare build context")
)
