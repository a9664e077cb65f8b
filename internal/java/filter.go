package java

import (
	"fmt"
	"slices"
	"strings"
)

// Filter selects JVMs by name, architecture and version. Zero-value criteria match everything.
type Filter struct {
	name       string
	arch       Arch
	version    *Version
	minVersion bool
}

// NewFilter compiles user-supplied filter strings. A trailing "+" on version selects
// every version greater than or equal to it; otherwise version acts as a prefix.
func NewFilter(name, arch, version string) (Filter, error) {
	f := Filter{name: strings.ToLower(strings.TrimSpace(name))}

	if strings.TrimSpace(arch) != "" {
		f.arch = NormalizeArch(arch)
	}

	version = strings.TrimSpace(version)
	if version != "" {
		if strings.HasSuffix(version, "+") {
			f.minVersion = true
			version = strings.TrimSuffix(version, "+")
		}
		v, err := ParseVersion(version)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid version filter: %w", err)
		}
		v = Normalize(v)
		f.version = &v
	}

	return f, nil
}

// Match reports whether jvm satisfies every criterion of the filter
func (f Filter) Match(jvm JVM) bool {
	if f.name != "" && !strings.Contains(strings.ToLower(jvm.Name), f.name) {
		return false
	}
	if f.arch != "" && NormalizeArch(string(jvm.Arch)) != f.arch {
		return false
	}
	if f.version != nil {
		v := Normalize(jvm.Version)
		if f.minVersion {
			return Compare(v, *f.version) >= 0
		}
		return HasPrefix(v, *f.version)
	}
	return true
}

// Rank orders JVMs best first: highest version, then the host architecture, then a fixed
// architecture preference, then discovery order. The input slice is not modified.
func Rank(jvms []JVM, host Arch) []JVM {
	ranked := slices.Clone(jvms)
	slices.SortStableFunc(ranked, func(a, b JVM) int {
		if c := Compare(Normalize(b.Version), Normalize(a.Version)); c != 0 {
			return c
		}
		ra, rb := archRank(a.Arch, host), archRank(b.Arch, host)
		if ra != rb {
			return ra - rb
		}
		return strings.Compare(string(a.Arch), string(b.Arch))
	})
	return ranked
}

// Select filters jvms and ranks the survivors
func Select(jvms []JVM, f Filter, host Arch) []JVM {
	matched := make([]JVM, 0, len(jvms))
	for _, jvm := range jvms {
		if f.Match(jvm) {
			matched = append(matched, jvm)
		}
	}
	return Rank(matched, host)
}
