//go:build !unix

package cache

// lockFile is a no-op where advisory locks are unavailable; the rename in Flush
// still keeps the settings file whole.
func lockFile(_ string) (func(), error) {
	return func() {}, nil
}
