//go:build darwin

package java

import (
	"os"
	"path/filepath"
)

// DefaultRoots returns the directories macOS installers place .jdk bundles in
func DefaultRoots() []string {
	roots := []string{"/Library/Java/JavaVirtualMachines"}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, "Library", "Java", "JavaVirtualMachines"))
	}
	return append(roots, "/System/Library/Java/JavaVirtualMachines")
}
