package java

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Tried in order against the lower-cased directory name
var dirVersionPatterns = []*regexp.Regexp{
	// jdk-17, jdk-17.0.2, jdk1.8.0_331, jre1.8.0_202
	regexp.MustCompile(`(?:jdk|jre)-?(\d+(?:\.\d+)*(?:_\d+)?)`),
	// java-17-openjdk-amd64, java-1.8.0-openjdk
	regexp.MustCompile(`java-?(\d+(?:\.\d+)*(?:_\d+)?)`),
	// temurin-17.jdk, zulu-11.jdk, 1.8.0_331
	regexp.MustCompile(`(?:^|[-_.])(\d+(?:\.\d+)*(?:_\d+)?)(?:$|[-_.+a-z])`),
}

var dirArchTokens = []struct {
	pattern *regexp.Regexp
	arch    Arch
}{
	{regexp.MustCompile(`aarch64|arm64`), ArchAArch64},
	{regexp.MustCompile(`x86_64|x86-64|amd64|x64`), ArchX86_64},
	{regexp.MustCompile(`i[356]86|x86`), ArchX86},
}

var dirVendors = []struct {
	token string
	name  string
}{
	{"temurin", "Eclipse Temurin"},
	{"adoptopenjdk", "AdoptOpenJDK"},
	{"zulu", "Zulu"},
	{"corretto", "Amazon Corretto"},
	{"graalvm", "GraalVM"},
	{"liberica", "Liberica"},
	{"semeru", "IBM Semeru"},
	{"microsoft", "Microsoft"},
	{"openjdk", "OpenJDK"},
}

// fromDirName guesses a record from the installation directory name alone
func fromDirName(loc Location, host Arch) (JVM, error) {
	name := strings.ToLower(filepath.Base(loc.Path))

	raw := ""
	for _, re := range dirVersionPatterns {
		if m := re.FindStringSubmatch(name); len(m) > 1 {
			raw = m[1]
			break
		}
	}
	if raw == "" {
		return JVM{}, fmt.Errorf("no version in directory name %q", name)
	}
	version, err := ParseVersion(raw)
	if err != nil {
		return JVM{}, err
	}

	arch := host
	for _, t := range dirArchTokens {
		if t.pattern.MatchString(name) {
			arch = t.arch
			break
		}
	}

	vendor := UnknownName
	for _, v := range dirVendors {
		if strings.Contains(name, v.token) {
			vendor = v.name
			break
		}
	}

	return JVM{
		Path:    loc.Path,
		Name:    vendor,
		Version: version,
		Arch:    arch,
		Source:  SourceDirName,
	}, nil
}
