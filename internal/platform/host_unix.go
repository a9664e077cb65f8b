//go:build unix

package platform

import "golang.org/x/sys/unix"

func nativeArch() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	machine := unix.ByteSliceToString(uts.Machine[:])
	if translated() {
		// An x86_64 binary under Rosetta sees x86_64 in uname
		return "arm64"
	}
	return machine
}
