//go:build !unix && !windows

package platform

func nativeArch() string { return "" }
