//go:build unix && !darwin

package platform

func translated() bool { return false }
