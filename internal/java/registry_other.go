//go:build !windows

package java

import "github.com/charmbracelet/log"

func registryLocators(*log.Logger) []Locator {
	return nil
}
