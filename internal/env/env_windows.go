package env

import (
	"golang.org/x/sys/windows/registry"
)

var systemEnvRegPath = `System\CurrentControlSet\Control\Session Manager\Environment`

// machineJavaHome returns the JAVA_HOME value from the system environment
func machineJavaHome() string {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, systemEnvRegPath, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer key.Close()

	value, _, err := key.GetStringValue("JAVA_HOME")
	if err != nil {
		return ""
	}

	// %VAR% references are stored unexpanded
	if expanded, err := registry.ExpandString(value); err == nil {
		return expanded
	}
	return value
}
