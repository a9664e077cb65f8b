package java

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
)

// releaseFiles are the places a JDK keeps its release descriptor, relative to the install dir
var releaseFiles = []string{
	"release",
	filepath.Join("Contents", "Home", "release"),
}

// errNoMetadata means a source does not apply to the location at all
var errNoMetadata = errors.New("no metadata")

// fromRelease reads the release descriptor shipped with every modern JDK
// A descriptor without a usable version does not hide one further down the list.
func fromRelease(loc Location, host Arch) (JVM, error) {
	lastErr := errNoMetadata
	for _, rel := range releaseFiles {
		data, err := os.ReadFile(filepath.Join(loc.Path, rel))
		if err != nil {
			continue
		}
		jvm, err := parseRelease(loc.Path, data, host)
		if err == nil {
			return jvm, nil
		}
		lastErr = fmt.Errorf("%s: %w", rel, err)
	}
	return JVM{}, lastErr
}

func parseRelease(path string, data []byte, host Arch) (JVM, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return JVM{}, fmt.Errorf("failed to parse release file: %w", err)
	}

	raw := releaseValue(props, "JAVA_VERSION")
	if raw == "" {
		raw = releaseValue(props, "JAVA_RUNTIME_VERSION")
	}
	if raw == "" {
		return JVM{}, fmt.Errorf("release file has no JAVA_VERSION")
	}
	version, err := ParseVersion(raw)
	if err != nil {
		return JVM{}, err
	}

	arch := NormalizeArch(releaseValue(props, "OS_ARCH"))
	if arch == ArchUnknown {
		arch = host
	}
	name := releaseValue(props, "IMPLEMENTOR")
	if name == "" {
		name = UnknownName
	}

	return JVM{
		Path:    path,
		Name:    name,
		Version: version,
		Arch:    arch,
		Source:  SourceRelease,
	}, nil
}

func releaseValue(props *properties.Properties, key string) string {
	v, ok := props.Get(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(v), `"`))
}
