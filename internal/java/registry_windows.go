//go:build windows

package java

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/windows/registry"
)

// javaSoftKeys are the HKLM key families Oracle-style installers register under
var javaSoftKeys = []struct {
	path string
	name string
}{
	{`SOFTWARE\JavaSoft\JDK`, "JDK"},
	{`SOFTWARE\JavaSoft\Java Development Kit`, "Java Development Kit"},
	{`SOFTWARE\JavaSoft\JRE`, "JRE"},
	{`SOFTWARE\JavaSoft\Java Runtime Environment`, "Java Runtime Environment"},
}

// registryViews pairs each registry view with the architecture its entries imply.
// The 64-bit view may hold x86_64 or aarch64 JVMs, so it implies nothing.
var registryViews = []struct {
	access uint32
	arch   Arch
}{
	{registry.WOW64_64KEY, ""},
	{registry.WOW64_32KEY, ArchX86},
}

// RegistryLocator enumerates JVMs registered under HKLM\SOFTWARE\JavaSoft
type RegistryLocator struct {
	Logger *log.Logger
}

func registryLocators(logger *log.Logger) []Locator {
	return []Locator{RegistryLocator{Logger: logger}}
}

// Locations implements Locator. Keys that cannot be opened are skipped.
func (r RegistryLocator) Locations() []Location {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	locations := make([]Location, 0)
	for _, view := range registryViews {
		for _, family := range javaSoftKeys {
			key, err := registry.OpenKey(registry.LOCAL_MACHINE, family.path, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE|view.access)
			if err != nil {
				logger.Debug("skipping registry key", "key", family.path, "err", err)
				continue
			}

			names, err := key.ReadSubKeyNames(-1)
			if err != nil {
				logger.Debug("failed to list registry subkeys", "key", family.path, "err", err)
				_ = key.Close()
				continue
			}

			for _, name := range names {
				loc, ok := readRegistryEntry(key, family.path, family.name, name, view.access, view.arch)
				if !ok {
					continue
				}
				locations = append(locations, loc)
			}
			_ = key.Close()
		}
	}
	return locations
}

func readRegistryEntry(parent registry.Key, parentPath, family, name string, access uint32, arch Arch) (Location, bool) {
	sub, err := registry.OpenKey(parent, name, registry.QUERY_VALUE|access)
	if err != nil {
		return Location{}, false
	}
	defer func() { _ = sub.Close() }()

	home, _, err := sub.GetStringValue("JavaHome")
	if err != nil || !IsValidSearchPath(home) {
		return Location{}, false
	}

	return Location{
		Path: filepath.Clean(home),
		Registry: &RegistryEntry{
			Key:     parentPath + `\` + name,
			Name:    family,
			Version: name,
			Arch:    arch,
		},
	}, true
}
