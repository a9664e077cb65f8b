// Package platform answers questions about the machine jvmfind runs on
package platform

import "runtime"

// HostArch returns the native machine architecture name as reported by the OS,
// which can differ from runtime.GOARCH when running under emulation.
func HostArch() string {
	if arch := nativeArch(); arch != "" {
		return arch
	}
	return runtime.GOARCH
}
