package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jvmfind/internal/platform"

	"github.com/adrg/xdg"
)

// Config holds the application configuration
type Config struct {
	Locations    []string     `json:"locations"`     // Extra directories to scan for Java installations
	UpdateConfig UpdateConfig `json:"update_config"` // Self-update configuration
	configPath   string
}

// UpdateConfig holds settings for the self-update feature
type UpdateConfig struct {
	Enabled     bool   `json:"enabled"`              // Master toggle for update functionality
	SkipVersion string `json:"skip_version"`         // Version user chose to skip
	Repository  string `json:"repository,omitempty"` // GitHub owner/name to fetch releases from
}

// Load loads the configuration from the user's config directory
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from configPath. A missing file yields an empty config.
func LoadFrom(configPath string) (*Config, error) {
	cfg := &Config{
		Locations: make([]string, 0),
		UpdateConfig: UpdateConfig{
			Enabled: true,
		},
		configPath: configPath,
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Remove BOM if present (UTF-8 BOM is EF BB BF)
	// This handles files created by PowerShell with Set-Content -Encoding UTF8
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	// Sanitize: drop empty entries and duplicates, keeping the first occurrence
	cleaned := make([]string, 0, len(cfg.Locations))
	for _, p := range cfg.Locations {
		p = cleanPath(p)
		if p == "" || containsPath(cleaned, p) {
			continue
		}
		cleaned = append(cleaned, p)
	}
	cfg.Locations = cleaned

	cfg.configPath = configPath
	return cfg, nil
}

// Path returns the file this configuration is read from and saved to
func (c *Config) Path() string {
	return c.configPath
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", c.configPath, err)
	}
	return nil
}

// AddLocation appends a search location. It returns false if the location is empty or already present.
func (c *Config) AddLocation(path string) bool {
	path = cleanPath(path)
	if path == "" || containsPath(c.Locations, path) {
		return false
	}

	c.Locations = append(c.Locations, path)
	return true
}

// RemoveLocation removes a search location. It returns false if the location was not present.
func (c *Config) RemoveLocation(path string) bool {
	path = cleanPath(path)

	for i, p := range c.Locations {
		if platform.SamePath(p, path) {
			c.Locations = append(c.Locations[:i], c.Locations[i+1:]...)
			return true
		}
	}
	return false
}

// HasLocation checks if a path is a registered search location
func (c *Config) HasLocation(path string) bool {
	return containsPath(c.Locations, cleanPath(path))
}

// DefaultPath returns the path to the configuration file
// Following XDG Base Directory specification
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "jvmfind", "jvmfind.json")
}

// cleanPath trims and cleans p, making it absolute when possible
func cleanPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

func containsPath(paths []string, path string) bool {
	for _, p := range paths {
		if platform.SamePath(p, path) {
			return true
		}
	}
	return false
}
