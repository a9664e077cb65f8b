//go:build linux

package java

import (
	"os"
	"path/filepath"
)

// DefaultRoots returns the directories distributions and SDK managers install JVMs into
func DefaultRoots() []string {
	roots := []string{
		"/usr/lib/jvm",
		"/usr/lib64/jvm",
		"/usr/java",
		"/opt/java",
	}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots,
			filepath.Join(home, ".sdkman", "candidates", "java"),
			filepath.Join(home, ".jdks"),
		)
	}
	return roots
}
