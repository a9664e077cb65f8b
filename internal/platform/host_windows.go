//go:build windows

package platform

import "os"

func nativeArch() string {
	// Set for 32-bit processes on a 64-bit OS
	if arch := os.Getenv("PROCESSOR_ARCHITEW6432"); arch != "" {
		return arch
	}
	return os.Getenv("PROCESSOR_ARCHITECTURE")
}
