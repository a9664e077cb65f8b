package env

import (
	"os"
	"path/filepath"
	"strings"
)

// JavaHome returns the JAVA_HOME currently in effect, cleaned, or "" if none is set.
// The process environment wins over the machine-wide setting.
func JavaHome() string {
	if v := strings.TrimSpace(os.Getenv("JAVA_HOME")); v != "" {
		return filepath.Clean(v)
	}
	if v := strings.TrimSpace(machineJavaHome()); v != "" {
		return filepath.Clean(v)
	}
	return ""
}
