package java

import (
	"fmt"
	"os"
	"path/filepath"

	"howett.net/plist"
)

// infoPlist holds the Info.plist keys macOS JDK bundles describe themselves with
type infoPlist struct {
	BundleName   string   `plist:"CFBundleName"`
	ArchPriority []string `plist:"LSArchitecturePriority"`
	JavaVM       struct {
		Version         string `plist:"JVMVersion"`
		PlatformVersion string `plist:"JVMPlatformVersion"`
		Vendor          string `plist:"JVMVendor"`
		Arch            string `plist:"JVMArch"`
	} `plist:"JavaVM"`
}

// fromPlist reads Contents/Info.plist of a macOS .jdk bundle
func fromPlist(loc Location, host Arch) (JVM, error) {
	data, err := os.ReadFile(filepath.Join(loc.Path, "Contents", "Info.plist"))
	if err != nil {
		return JVM{}, errNoMetadata
	}
	return parsePlist(loc.Path, data, host)
}

func parsePlist(path string, data []byte, host Arch) (JVM, error) {
	var info infoPlist
	if _, err := plist.Unmarshal(data, &info); err != nil {
		return JVM{}, fmt.Errorf("failed to parse Info.plist: %w", err)
	}

	raw := info.JavaVM.Version
	if raw == "" {
		raw = info.JavaVM.PlatformVersion
	}
	version, err := ParseVersion(raw)
	if err != nil {
		return JVM{}, err
	}

	name := info.BundleName
	if name == "" {
		name = info.JavaVM.Vendor
	}
	if name == "" {
		name = UnknownName
	}

	arch := NormalizeArch(info.JavaVM.Arch)
	if arch == ArchUnknown && len(info.ArchPriority) > 0 {
		arch = NormalizeArch(info.ArchPriority[0])
	}
	if arch == ArchUnknown {
		arch = host
	}

	return JVM{
		Path:    path,
		Name:    name,
		Version: version,
		Arch:    arch,
		Source:  SourcePlist,
	}, nil
}
