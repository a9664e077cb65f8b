package java

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelease(t *testing.T) {
	data := []byte(`IMPLEMENTOR="Eclipse Adoptium"
IMPLEMENTOR_VERSION="Temurin-17.0.2+8"
JAVA_VERSION="17.0.2"
JAVA_VERSION_DATE="2022-01-18"
MODULES="java.base java.compiler"
OS_ARCH="aarch64"
OS_NAME="Darwin"
SOURCE=".:git:a5ed4d2a8f5e"
`)

	jvm, err := parseRelease("/jvms/temurin-17.jdk", data, ArchX86_64)
	require.NoError(t, err)
	assert.Equal(t, "17.0.2", jvm.Version.String())
	assert.Equal(t, ArchAArch64, jvm.Arch)
	assert.Equal(t, "Eclipse Adoptium", jvm.Name)
	assert.Equal(t, SourceRelease, jvm.Source)
	assert.Equal(t, "/jvms/temurin-17.jdk", jvm.Path)
}

func TestParseRelease_Defaults(t *testing.T) {
	jvm, err := parseRelease("/jvms/x", []byte("JAVA_VERSION = 11.0.18 \n"), ArchAArch64)
	require.NoError(t, err)
	assert.Equal(t, "11.0.18", jvm.Version.String())
	assert.Equal(t, ArchAArch64, jvm.Arch, "missing OS_ARCH falls back to host")
	assert.Equal(t, UnknownName, jvm.Name)
}

func TestParseRelease_AliasArch(t *testing.T) {
	jvm, err := parseRelease("/jvms/x", []byte("JAVA_VERSION=\"1.8.0_331\"\nOS_ARCH=\"amd64\"\n"), ArchAArch64)
	require.NoError(t, err)
	assert.Equal(t, ArchX86_64, jvm.Arch)
	assert.Equal(t, 331, jvm.Version.Build)
}

func TestParseRelease_RuntimeVersionFallback(t *testing.T) {
	jvm, err := parseRelease("/jvms/x", []byte("JAVA_RUNTIME_VERSION=\"21.0.1+12-LTS\"\n"), ArchX86_64)
	require.NoError(t, err)
	assert.Equal(t, []int{21, 0, 1}, jvm.Version.Components)
}

func TestParseRelease_NoVersion(t *testing.T) {
	for name, data := range map[string]string{
		"missing": "OS_ARCH=\"aarch64\"\n",
		"empty":   "JAVA_VERSION=\"\"\n",
		"garbage": "JAVA_VERSION=\"unknown\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseRelease("/jvms/x", []byte(data), ArchX86_64)
			assert.Error(t, err)
		})
	}
}

func TestParsePlist(t *testing.T) {
	jvm, err := parsePlist("/jvms/temurin-17.jdk", []byte(infoPlistXML("Eclipse Temurin 17", "17.0.2", "")), ArchAArch64)
	require.NoError(t, err)
	assert.Equal(t, "Eclipse Temurin 17", jvm.Name)
	assert.Equal(t, "17.0.2", jvm.Version.String())
	assert.Equal(t, ArchAArch64, jvm.Arch)
	assert.Equal(t, SourcePlist, jvm.Source)
}

func TestParsePlist_Arch(t *testing.T) {
	jvm, err := parsePlist("/jvms/x", []byte(infoPlistXML("Zulu 11", "11.0.18", "x86_64")), ArchAArch64)
	require.NoError(t, err)
	assert.Equal(t, ArchX86_64, jvm.Arch)
}

func TestParsePlist_Invalid(t *testing.T) {
	_, err := parsePlist("/jvms/x", []byte("not a plist"), ArchX86_64)
	assert.Error(t, err)

	_, err = parsePlist("/jvms/x", []byte(infoPlistXML("No Version", "", "")), ArchX86_64)
	assert.Error(t, err)
}

func TestFromDirName(t *testing.T) {
	tests := []struct {
		dir     string
		version string
		arch    Arch
		name    string
	}{
		{"jdk-17.0.2", "17.0.2", ArchAArch64, UnknownName},
		{"jdk1.8.0_331", "1.8.0_331", ArchAArch64, UnknownName},
		{"java-17-openjdk-amd64", "17", ArchX86_64, "OpenJDK"},
		{"java-1.8.0-openjdk-1.8.0.352.b08-2.el8.x86_64", "1.8.0.352", ArchX86_64, "OpenJDK"},
		{"temurin-17.jdk", "17", ArchAArch64, "Eclipse Temurin"},
		{"zulu-11.jdk", "11", ArchAArch64, "Zulu"},
		{"amazon-corretto-21-x64", "21", ArchX86_64, "Amazon Corretto"},
		{"1.8.0_331", "1.8.0_331", ArchAArch64, UnknownName},
		{"zulu17.40.19-ca-jdk17.0.6-macosx_aarch64", "17.0.6", ArchAArch64, "Zulu"},
	}
	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			jvm, err := fromDirName(Location{Path: filepath.Join("/jvms", tt.dir)}, ArchAArch64)
			require.NoError(t, err)
			assert.Equal(t, tt.version, jvm.Version.String())
			assert.Equal(t, tt.arch, jvm.Arch)
			assert.Equal(t, tt.name, jvm.Name)
			assert.Equal(t, SourceDirName, jvm.Source)
		})
	}
}

func TestFromDirName_NoVersion(t *testing.T) {
	for _, dir := range []string{"bin", "corretto-x64", "default-java", "current"} {
		t.Run(dir, func(t *testing.T) {
			_, err := fromDirName(Location{Path: filepath.Join("/jvms", dir)}, ArchX86_64)
			assert.Error(t, err)
		})
	}
}

func TestFromRegistry(t *testing.T) {
	_, err := fromRegistry(Location{Path: `C:\Java\jdk-17`}, ArchX86_64)
	assert.ErrorIs(t, err, errNoMetadata)

	jvm, err := fromRegistry(Location{
		Path:     `C:\Java\jre1.8.0_331`,
		Registry: &RegistryEntry{Name: "Java Runtime Environment", Version: "1.8.0_331", Arch: ArchX86},
	}, ArchX86_64)
	require.NoError(t, err)
	assert.Equal(t, "1.8.0_331", jvm.Version.String())
	assert.Equal(t, ArchX86, jvm.Arch)
	assert.Equal(t, "Java Runtime Environment", jvm.Name)
	assert.Equal(t, SourceRegistry, jvm.Source)

	jvm, err = fromRegistry(Location{
		Path:     `C:\Java\jdk-17`,
		Registry: &RegistryEntry{Name: "JDK", Version: "17.0.2"},
	}, ArchAArch64)
	require.NoError(t, err)
	assert.Equal(t, ArchAArch64, jvm.Arch, "64-bit view defaults to host")
}

func TestExtractor_Priority(t *testing.T) {
	root := t.TempDir()
	e := NewExtractor(ArchAArch64, quietLogger())

	// release wins over plist and the directory name
	dir := filepath.Join(root, "jdk-11.jdk")
	writeFile(t, dir, "Contents/Home/release", "JAVA_VERSION=\"17.0.2\"\nOS_ARCH=\"x86_64\"\n")
	writeFile(t, dir, "Contents/Info.plist", infoPlistXML("Temurin 17", "17.0.1", ""))
	jvm, ok := e.Extract(Location{Path: dir})
	require.True(t, ok)
	assert.Equal(t, SourceRelease, jvm.Source)
	assert.Equal(t, "17.0.2", jvm.Version.String())
	assert.Equal(t, UnknownName, jvm.Name, "fields are not merged across sources")

	// a release without a version falls through to the plist
	dir = filepath.Join(root, "zulu-11.jdk")
	writeFile(t, dir, "Contents/Home/release", "OS_ARCH=\"x86_64\"\n")
	writeFile(t, dir, "Contents/Info.plist", infoPlistXML("Zulu 11", "11.0.18", ""))
	jvm, ok = e.Extract(Location{Path: dir})
	require.True(t, ok)
	assert.Equal(t, SourcePlist, jvm.Source)
	assert.Equal(t, "Zulu 11", jvm.Name)

	// a broken plist falls through to the directory name
	dir = filepath.Join(root, "jdk-21")
	writeFile(t, dir, "Contents/Info.plist", "<plist><dict>")
	jvm, ok = e.Extract(Location{Path: dir})
	require.True(t, ok)
	assert.Equal(t, SourceDirName, jvm.Source)
	assert.Equal(t, "21", jvm.Version.String())

	// nothing usable
	dir = filepath.Join(root, "docs")
	writeFile(t, dir, "README", "hello")
	_, ok = e.Extract(Location{Path: dir})
	assert.False(t, ok)
}

func TestExtractor_RecoversFromPanics(t *testing.T) {
	saved := strategies
	defer func() { strategies = saved }()

	strategies = []strategy{
		{SourceRelease, func(Location, Arch) (JVM, error) { panic("boom") }},
		{SourcePlist, func(Location, Arch) (JVM, error) { return JVM{}, errors.New("bad plist") }},
		{SourceDirName, fromDirName},
	}

	e := NewExtractor(ArchX86_64, quietLogger())
	jvm, ok := e.Extract(Location{Path: "/jvms/jdk-17"})
	require.True(t, ok)
	assert.Equal(t, SourceDirName, jvm.Source)
}

func TestExtractor_ReleaseFallsThroughToBundleHome(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x.jdk")
	writeFile(t, dir, "release", "FOO=bar\n")
	writeFile(t, dir, "Contents/Home/release", "JAVA_VERSION=\"17.0.2\"\nOS_ARCH=\"aarch64\"\n")

	jvm, ok := NewExtractor(ArchX86_64, quietLogger()).Extract(Location{Path: dir})
	require.True(t, ok)
	assert.Equal(t, SourceRelease, jvm.Source)
	assert.Equal(t, "17.0.2", jvm.Version.String())
	assert.Equal(t, ArchAArch64, jvm.Arch)
	assert.Equal(t, dir, jvm.Path)
}

func TestExtractor_ReleaseNameWinsOverBundleName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "zulu-17.jdk")
	writeFile(t, dir, "Contents/Home/release", "JAVA_VERSION=\"17.0.9\"\nIMPLEMENTOR=\"Azul Systems, Inc.\"\n")
	writeFile(t, dir, "Contents/Info.plist", infoPlistXML("Zulu 17", "17.0.9", ""))

	jvm, ok := NewExtractor(ArchX86_64, quietLogger()).Extract(Location{Path: dir})
	require.True(t, ok)
	assert.Equal(t, "Azul Systems, Inc.", jvm.Name)
}

func TestExtractor_LogsRegistryKey(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	loc := Location{
		Path:     filepath.Join(t.TempDir(), "jre"),
		Registry: &RegistryEntry{Key: `SOFTWARE\JavaSoft\JRE\bogus`, Version: "bogus"},
	}
	_, ok := NewExtractor(ArchX86_64, logger).Extract(loc)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "metadata source failed")
	assert.Contains(t, buf.String(), "JavaSoft")
	assert.Contains(t, buf.String(), "bogus")
}

func TestJVM_String(t *testing.T) {
	jvm := JVM{
		Path:    `C:\Program Files\Java\jdk-17`,
		Name:    `Oracle "Corp"`,
		Version: mustVersion(t, "17.0.2"),
		Arch:    ArchX86_64,
	}
	assert.Equal(t, `17.0.2 (x86_64) "Oracle Corp" - C:\Program Files\Java\jdk-17`, jvm.String())
}
