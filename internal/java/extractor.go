package java

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// strategy is one metadata source; it returns errNoMetadata when it does not apply
type strategy struct {
	source  Source
	extract func(loc Location, host Arch) (JVM, error)
}

// strategies in priority order; the first success wins
var strategies = []strategy{
	{SourceRelease, fromRelease},
	{SourcePlist, fromPlist},
	{SourceRegistry, fromRegistry},
	{SourceDirName, fromDirName},
}

// Extractor turns candidate locations into JVM records
type Extractor struct {
	host   Arch
	logger *log.Logger
}

// NewExtractor creates an extractor that defaults missing architectures to host
func NewExtractor(host Arch, logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{host: host, logger: logger}
}

// Extract returns the record for loc, or false when no source yields a usable version.
// A failing or panicking source never escapes; the next source is tried.
func (e *Extractor) Extract(loc Location) (JVM, bool) {
	logger := e.logger.With("path", loc.Path)
	if loc.Registry != nil {
		logger = logger.With("key", loc.Registry.Key)
	}

	for _, s := range strategies {
		jvm, err := e.try(s, loc)
		if err == nil {
			return jvm, true
		}
		if err != errNoMetadata {
			logger.Debug("metadata source failed", "source", s.source, "err", err)
		}
	}
	logger.Debug("skipping candidate without a version")
	return JVM{}, false
}

func (e *Extractor) try(s strategy, loc Location) (jvm JVM, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s source panicked: %v", s.source, r)
		}
	}()
	return s.extract(loc, e.host)
}

// fromRegistry builds a record from values read out of the Windows registry
func fromRegistry(loc Location, host Arch) (JVM, error) {
	entry := loc.Registry
	if entry == nil {
		return JVM{}, errNoMetadata
	}
	version, err := ParseVersion(entry.Version)
	if err != nil {
		return JVM{}, err
	}
	arch := entry.Arch
	if arch == "" || arch == ArchUnknown {
		arch = host
	}
	name := entry.Name
	if name == "" {
		name = UnknownName
	}
	return JVM{
		Path:    loc.Path,
		Name:    name,
		Version: version,
		Arch:    arch,
		Source:  SourceRegistry,
	}, nil
}
