//go:build !windows

package env

// machineJavaHome has no machine-wide store outside Windows
func machineJavaHome() string {
	return ""
}
