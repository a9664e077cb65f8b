//go:build !darwin && !linux && !windows

package java

// DefaultRoots returns nothing; there is no conventional JVM location on this platform
func DefaultRoots() []string {
	return nil
}
