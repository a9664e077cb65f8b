package java

import (
	"fmt"
	"strings"
)

// UnknownName is used when no metadata source names the distribution
const UnknownName = "unknown"

// Source identifies which metadata source produced a record
type Source string

const (
	SourceRelease  Source = "release"
	SourcePlist    Source = "plist"
	SourceRegistry Source = "registry"
	SourceDirName  Source = "dirname"
)

// JVM represents one discovered Java installation
type JVM struct {
	Path    string  // Installation directory
	Name    string  // Vendor/distribution label (e.g., "Eclipse Adoptium")
	Version Version // Parsed version
	Arch    Arch    // Canonical architecture tag
	Source  Source  // Metadata source, for diagnostics only
}

// String formats the record the way detailed output prints it. Quotes are dropped from the name.
func (j JVM) String() string {
	name := strings.ReplaceAll(j.Name, `"`, "")
	return fmt.Sprintf("%s (%s) \"%s\" - %s", j.Version, j.Arch, name, j.Path)
}

// Location is a candidate installation directory handed to the extractor
type Location struct {
	Path     string
	Registry *RegistryEntry // Set only for locations enumerated from the Windows registry
}

// RegistryEntry carries the values read from a registry subkey
type RegistryEntry struct {
	Key     string // Full key path, for diagnostics
	Name    string // Key family (e.g., "JDK", "Java Runtime Environment")
	Version string // Subkey name (e.g., "17.0.2", "1.8.0_331")
	Arch    Arch   // Architecture implied by the registry view, empty if not known
}
