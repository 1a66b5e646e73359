package gitcache

import (
	"os"
	"path/filepath"
)

// Reorient converts a path into the canonical absolute form the query engine reports.
// Relative paths are joined with the current directory; symlinks and dot segments are
// resolved when the path exists, otherwise the joined path is used as is.
func Reorient(path string) string {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		path = filepath.Join(cwd, path)
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return stripExtendedPrefix(filepath.Clean(path))
	}
	if abs, absErr := filepath.Abs(resolved); absErr == nil {
		resolved = abs
	}
	return stripExtendedPrefix(resolved)
}
