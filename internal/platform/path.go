package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

// PathKey normalizes a path for equality checks; Windows and macOS file systems are case-insensitive
func PathKey(path string) string {
	path = filepath.Clean(path)
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		return strings.ToLower(path)
	}
	return path
}

// SamePath reports whether a and b name the same path on this host
func SamePath(a, b string) bool {
	return PathKey(a) == PathKey(b)
}
