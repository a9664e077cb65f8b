package java

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// writeFile creates path (and its parents) under dir with the given content
func writeFile(t *testing.T, dir, path, content string) {
	t.Helper()
	full := filepath.Join(dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

// makeJDK creates a JDK directory under root with a release file
func makeJDK(t *testing.T, root, name, version, arch, implementor string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	content := "JAVA_VERSION=\"" + version + "\"\n"
	if arch != "" {
		content += "OS_ARCH=\"" + arch + "\"\n"
	}
	if implementor != "" {
		content += "IMPLEMENTOR=\"" + implementor + "\"\n"
	}
	writeFile(t, dir, "release", content)
	return dir
}

func infoPlistXML(bundleName, jvmVersion, jvmArch string) string {
	arch := ""
	if jvmArch != "" {
		arch = "\t\t<key>JVMArch</key>\n\t\t<string>" + jvmArch + "</string>\n"
	}
	return `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleName</key>
	<string>` + bundleName + `</string>
	<key>JavaVM</key>
	<dict>
` + arch + `		<key>JVMVersion</key>
		<string>` + jvmVersion + `</string>
		<key>JVMVendor</key>
		<string>Eclipse Adoptium</string>
	</dict>
</dict>
</plist>
`
}
