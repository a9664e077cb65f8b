package java

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed Java version such as "17.0.2", "21" or "1.8.0_331"
type Version struct {
	Components []int  // Numeric dotted components (e.g., [1 8 0])
	Suffix     string // Everything after the dotted part (e.g., "_331", "+8", "-ea")
	Build      int    // Update/build number taken from the suffix, 0 if absent
	raw        string
}

// ParseVersion parses a version string, tolerating quotes, whitespace and a leading "v"
func ParseVersion(s string) (Version, error) {
	raw := strings.Trim(strings.TrimSpace(s), `"'`)
	raw = strings.TrimSpace(raw)
	text := strings.TrimPrefix(strings.TrimPrefix(raw, "v"), "V")

	end := 0
	for end < len(text) && (text[end] == '.' || (text[end] >= '0' && text[end] <= '9')) {
		end++
	}
	numeric := strings.TrimRight(text[:end], ".")
	if numeric == "" {
		return Version{}, fmt.Errorf("invalid version %q: no numeric components", s)
	}

	parts := strings.Split(numeric, ".")
	components := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		components = append(components, n)
	}

	suffix := text[len(numeric):]
	return Version{
		Components: components,
		Suffix:     suffix,
		Build:      parseBuild(suffix),
		raw:        raw,
	}, nil
}

// parseBuild extracts the number following the first "_" or "+" of a suffix
func parseBuild(suffix string) int {
	idx := strings.IndexAny(suffix, "_+")
	if idx < 0 {
		return 0
	}
	digits := suffix[idx+1:]
	end := 0
	for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(digits[:end])
	if err != nil {
		return 0
	}
	return n
}

// String renders the version the way it was written
func (v Version) String() string {
	if v.raw != "" {
		return v.raw
	}
	parts := make([]string, len(v.Components))
	for i, c := range v.Components {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".") + v.Suffix
}

// PreRelease reports whether the version is an early-access or other pre-release build
func (v Version) PreRelease() bool {
	return strings.HasPrefix(v.Suffix, "-")
}

// Normalize rewrites legacy "1.x" numbering to the modern scheme, so 1.8.0_331 becomes 8.0_331.
// The rendered text is preserved.
func Normalize(v Version) Version {
	if len(v.Components) < 2 || v.Components[0] != 1 {
		return v
	}
	out := v
	out.Components = append([]int(nil), v.Components[1:]...)
	return out
}

// Compare orders two versions component-wise, padding the shorter one with zeros. Equal
// components put a pre-release ("21-ea") below the release, then compare by build.
// It does not normalize; callers compare Normalize(a) with Normalize(b) when legacy numbering matters.
func Compare(a, b Version) int {
	n := max(len(a.Components), len(b.Components))
	for i := 0; i < n; i++ {
		ac, bc := component(a, i), component(b, i)
		if ac != bc {
			if ac < bc {
				return -1
			}
			return 1
		}
	}
	if pa, pb := a.PreRelease(), b.PreRelease(); pa != pb {
		if pa {
			return -1
		}
		return 1
	}
	switch {
	case a.Build < b.Build:
		return -1
	case a.Build > b.Build:
		return 1
	}
	return 0
}

func component(v Version, i int) int {
	if i < len(v.Components) {
		return v.Components[i]
	}
	return 0
}

// HasPrefix reports whether the leading components of v equal those of prefix (zero padded).
// A non-zero prefix build must match as well.
func HasPrefix(v, prefix Version) bool {
	for i := range prefix.Components {
		if component(v, i) != prefix.Components[i] {
			return false
		}
	}
	if prefix.Build != 0 && prefix.Build != v.Build {
		return false
	}
	return true
}
