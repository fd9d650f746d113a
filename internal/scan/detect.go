package scan

import (
	"os"
	"path/filepath"
)

const Marker = ".git"

// IsRepository reports whether dir directly contains a repository marker.
// A .git file (worktrees, submodules) counts the same as a .git directory.
func IsRepository(dir string) bool {
	_, err := os.Lstat(filepath.Join(dir, Marker))
	return err == nil
}
