//go:build windows

package gitcache

import "strings"

// stripExtendedPrefix removes the \\?\ prefix canonicalization can return on Windows,
// which would otherwise never match the engine's plain drive paths.
func stripExtendedPrefix(path string) string {
	return strings.TrimPrefix(path, `\\?\`)
}
