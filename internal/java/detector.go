package java

import (
	"os"
	"path/filepath"

	"jvmfind/internal/platform"

	"github.com/charmbracelet/log"
)

// Locator enumerates candidate installation locations
type Locator interface {
	Locations() []Location
}

// RootLocator lists the immediate subdirectories of each root, one candidate per subdirectory
type RootLocator struct {
	Roots  []string
	Logger *log.Logger
}

// Locations implements Locator. Missing or unreadable roots are skipped.
func (r RootLocator) Locations() []Location {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	locations := make([]Location, 0)
	for _, root := range r.Roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			logger.Debug("skipping search root", "root", root, "err", err)
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(root, entry.Name())
			switch {
			case entry.IsDir():
			case entry.Type()&os.ModeSymlink != 0 && IsValidSearchPath(path):
				// Linked installs (Homebrew, SDKMAN) often live outside the root
			default:
				continue
			}
			locations = append(locations, Location{Path: path})
		}
	}
	return locations
}

// Detector finds Java installations on the system
type Detector struct {
	locators  []Locator
	extractor *Extractor
	logger    *log.Logger
}

// NewDetector creates a detector over the platform default roots, the platform registry
// (where there is one) and the given custom roots, in that order
func NewDetector(customRoots []string, logger *log.Logger) *Detector {
	if logger == nil {
		logger = log.Default()
	}
	locators := []Locator{RootLocator{Roots: DefaultRoots(), Logger: logger}}
	locators = append(locators, registryLocators(logger)...)
	locators = append(locators, RootLocator{Roots: customRoots, Logger: logger})
	return NewDetectorWithLocators(locators, HostArch(), logger)
}

// NewDetectorWithLocators creates a detector over an explicit set of locators
func NewDetectorWithLocators(locators []Locator, host Arch, logger *log.Logger) *Detector {
	if logger == nil {
		logger = log.Default()
	}
	return &Detector{
		locators:  locators,
		extractor: NewExtractor(host, logger),
		logger:    logger,
	}
}

// FindAll returns every JVM that could be identified, in discovery order.
// A location resolving to an installation already discovered is ignored.
func (d *Detector) FindAll() []JVM {
	jvms := make([]JVM, 0)
	seen := make(map[string]bool)

	for _, locator := range d.locators {
		for _, loc := range locator.Locations() {
			key := resolvedKey(loc.Path)
			if seen[key] {
				continue
			}

			jvm, ok := d.extractor.Extract(loc)
			if !ok {
				continue
			}
			seen[key] = true
			jvm.Path = filepath.Clean(jvm.Path)
			d.logger.Debug("found JVM", "path", jvm.Path, "version", jvm.Version, "arch", jvm.Arch, "source", jvm.Source)
			jvms = append(jvms, jvm)
		}
	}

	return jvms
}

// resolvedKey identifies the installation behind path, following symlinks when it can
func resolvedKey(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return platform.PathKey(path)
}

// IsValidSearchPath checks if a path is a directory that can be searched for Java installations
func IsValidSearchPath(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
