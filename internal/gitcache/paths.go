package gitcache

import (
	"path/filepath"
	"strings"
)

// isWithin reports whether path equals base or is nested under it, comparing whole
// path components. A "." base claims every relative path that stays below it.
func isWithin(path, base string) bool {
	path = filepath.Clean(path)
	base = filepath.Clean(base)
	if path == base {
		return true
	}

	sep := string(filepath.Separator)
	if base == "." {
		return !filepath.IsAbs(path) && path != ".." && !strings.HasPrefix(path, ".."+sep)
	}
	if strings.HasSuffix(base, sep) {
		return strings.HasPrefix(path, base)
	}
	return strings.HasPrefix(path, base+sep)
}
