//go:build windows

package java

// DefaultRoots returns the vendor directories Windows installers use
func DefaultRoots() []string {
	return []string{
		"C:\\Program Files\\Java",
		"C:\\Program Files (x86)\\Java",
		"C:\\Program Files\\Eclipse Adoptium",
		"C:\\Program Files\\Eclipse Foundation",
		"C:\\Program Files\\Zulu",
		"C:\\Program Files\\Amazon Corretto",
		"C:\\Program Files\\Microsoft",
	}
}
