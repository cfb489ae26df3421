package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// TargetWithinRoot reports whether target stays inside root once both are cleaned.
func TargetWithinRoot(root, target string) (bool, error) {
	if root == "" || target == "" {
		return false, nil
	}

	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(target))
	if err != nil {
		return false, err
	}

	for _, component := range strings.Split(filepath.Clean(rel), string(os.PathSeparator)) {
		if component == ".." {
			return false, nil
		}
	}
	return true, nil
}
