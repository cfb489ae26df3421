//go:build unix

package cache

import (
	"os"

	"go.trai.ch/imagetool/internal/core/domain"
	"golang.org/x/sys/unix"
)

// lockFile takes an exclusive advisory lock on path, creating it if needed.
func lockFile(path string) (func(), error) {
	//nolint:gosec // Lock path is derived from the settings file path
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, domain.PrivateFilePerm)
	if err != nil {
		return nil, err
	}

	fd := int(f.Fd()) //nolint:gosec // File descriptors fit in int
	if err := unix.Flock(fd, unix.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, err
	}

	return func() {
		_ = unix.Flock(fd, unix.LOCK_UN)
		_ = f.Close()
	}, nil
}
