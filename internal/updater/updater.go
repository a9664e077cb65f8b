package updater

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"jvmfind/internal/config"

	"github.com/charmbracelet/log"
	"github.com/creativeprojects/go-selfupdate"
)

const (
	// DefaultRepository is the GitHub repository jvmfind releases are published to
	DefaultRepository = "jvmfind/jvmfind"

	// UpdateTimeout is maximum time for update operations
	UpdateTimeout = 5 * time.Minute
)

// ErrDisabled is returned when updates are turned off in the configuration
var ErrDisabled = errors.New("updates are disabled in the configuration")

// Updater handles checking and applying updates
type Updater struct {
	config         *config.Config
	currentVersion string
	repository     string
	selfUpdater    *selfupdate.Updater
	logger         *log.Logger
}

// NewUpdater creates a new Updater instance
func NewUpdater(cfg *config.Config, version string, logger *log.Logger) (*Updater, error) {
	if !cfg.UpdateConfig.Enabled {
		return nil, ErrDisabled
	}
	if logger == nil {
		logger = log.Default()
	}

	// Configure selfupdate with SHA256 checksum validation
	su, err := selfupdate.NewUpdater(selfupdate.Config{
		Validator: &selfupdate.ChecksumValidator{
			UniqueFilename: "SHA256SUMS.txt",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create updater: %w", err)
	}

	return &Updater{
		config:         cfg,
		currentVersion: cleanVersion(version),
		repository:     repositoryOf(cfg),
		selfUpdater:    su,
		logger:         logger,
	}, nil
}

// CurrentVersion returns the running version without its "v" prefix
func (u *Updater) CurrentVersion() string {
	return u.currentVersion
}

// CheckForUpdate queries GitHub for the latest release
// Returns nil if no update available or if user skipped this version
func (u *Updater) CheckForUpdate(ctx context.Context) (*selfupdate.Release, error) {
	u.logger.Debug("checking for updates", "repository", u.repository, "current", u.currentVersion)

	latest, found, err := u.selfUpdater.DetectLatest(ctx, selfupdate.ParseSlug(u.repository))
	if err != nil {
		return nil, fmt.Errorf("failed to check for updates: %w", err)
	}

	if !found {
		return nil, fmt.Errorf("no releases found for %s", u.repository)
	}

	if !isNewer(latest, u.currentVersion) {
		return nil, nil
	}

	// Check if user explicitly skipped this version
	if u.config.UpdateConfig.SkipVersion == latest.Version() {
		u.logger.Debug("latest version skipped by user", "version", latest.Version())
		return nil, nil
	}

	return latest, nil
}

// PerformUpdate downloads and installs the update
// Creates a backup and rolls back on failure
func (u *Updater) PerformUpdate(ctx context.Context, release *selfupdate.Release) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to determine executable path: %w", err)
	}

	// Create backup before attempting update
	backup := exe + ".backup"
	if err := copyFile(exe, backup); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, release.AssetURL, release.AssetName, exe); err != nil {
		if rollbackErr := os.Rename(backup, exe); rollbackErr != nil {
			return fmt.Errorf("update failed and rollback failed: update error: %w, rollback error: %v", err, rollbackErr)
		}
		return fmt.Errorf("update failed (rolled back): %w", err)
	}

	if err := os.Remove(backup); err != nil {
		u.logger.Debug("failed to remove backup", "path", backup, "err", err)
	}
	return nil
}

// SkipVersion marks a version as skipped by the user
func (u *Updater) SkipVersion(version string) error {
	u.config.UpdateConfig.SkipVersion = version
	return u.config.Save()
}

// isNewer reports whether release is newer than current. Development builds never update.
func isNewer(release *selfupdate.Release, current string) bool {
	if current == "" || current == "dev" {
		return false
	}
	return !release.LessOrEqual(current)
}

func repositoryOf(cfg *config.Config) string {
	if repo := strings.TrimSpace(cfg.UpdateConfig.Repository); repo != "" {
		return repo
	}
	return DefaultRepository
}

// copyFile creates a copy of the file for backup purposes
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0755)
}

// cleanVersion removes 'v' prefix if present for consistent comparison
func cleanVersion(version string) string {
	return strings.TrimPrefix(strings.TrimSpace(version), "v")
}
