//go:build !windows

package gitcache

func stripExtendedPrefix(path string) string {
	return path
}
