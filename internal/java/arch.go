package java

import (
	"strings"

	"jvmfind/internal/platform"
)

// Arch is a canonical CPU architecture tag
type Arch string

// Canonical architecture tags
const (
	ArchX86_64  Arch = "x86_64"
	ArchAArch64 Arch = "aarch64"
	ArchX86     Arch = "x86"
	ArchARM     Arch = "arm"
	ArchPPC64LE Arch = "ppc64le"
	ArchPPC64   Arch = "ppc64"
	ArchS390X   Arch = "s390x"
	ArchRISCV64 Arch = "riscv64"
	ArchUnknown Arch = "unknown"
)

var archAliases = map[string]Arch{
	"x86_64":  ArchX86_64,
	"x86-64":  ArchX86_64,
	"amd64":   ArchX86_64,
	"x64":     ArchX86_64,
	"aarch64": ArchAArch64,
	"arm64":   ArchAArch64,
	"armv8":   ArchAArch64,
	"x86":     ArchX86,
	"x86_32":  ArchX86,
	"i386":    ArchX86,
	"i586":    ArchX86,
	"i686":    ArchX86,
	"386":     ArchX86,
	"arm":     ArchARM,
	"arm32":   ArchARM,
	"armhf":   ArchARM,
	"armv7l":  ArchARM,
	"aarch32": ArchARM,
	"ppc64le": ArchPPC64LE,
	"ppc64":   ArchPPC64,
	"s390x":   ArchS390X,
	"riscv64": ArchRISCV64,
}

// archOrder ranks non-native architectures after the host's own
var archOrder = []Arch{ArchX86_64, ArchAArch64, ArchX86, ArchARM, ArchPPC64LE, ArchPPC64, ArchS390X, ArchRISCV64}

// NormalizeArch maps an architecture name or alias to its canonical tag.
// Unrecognized names are returned lower-cased; empty input yields ArchUnknown.
func NormalizeArch(s string) Arch {
	key := strings.ToLower(strings.Trim(strings.TrimSpace(s), `"'`))
	if key == "" {
		return ArchUnknown
	}
	if a, ok := archAliases[key]; ok {
		return a
	}
	return Arch(key)
}

// HostArch returns the canonical architecture of the machine we are running on
func HostArch() Arch {
	return NormalizeArch(platform.HostArch())
}

// archRank orders architectures for ranking: the host first, then archOrder, then unknown names
func archRank(a, host Arch) int {
	if a == host {
		return 0
	}
	for i, known := range archOrder {
		if a == known {
			return i + 1
		}
	}
	return len(archOrder) + 1
}
