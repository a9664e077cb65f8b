//go:build darwin

package platform

import "golang.org/x/sys/unix"

// translated reports whether the process runs under Rosetta 2
func translated() bool {
	v, err := unix.SysctlUint32("sysctl.proc_translated")
	return err == nil && v == 1
}
