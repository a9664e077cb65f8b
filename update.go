package main

import (
	"context"
	"errors"
	"fmt"

	"jvmfind/internal/updater"

	"github.com/spf13/cobra"
)

func (a *app) newUpdateCmd() *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update jvmfind to the latest release",
		Long: `Checks the latest jvmfind release on GitHub and, after confirmation, replaces
the running binary with it. The download is verified against the release's
SHA256SUMS.txt and the previous binary is restored if the update fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpdate(cmd.Context(), checkOnly)
		},
	}
	cmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")

	return cmd
}

func (a *app) runUpdate(ctx context.Context, checkOnly bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return &ExitError{Code: ExitIOErr, Err: err}
	}

	upd, err := updater.NewUpdater(cfg, Version, a.logger)
	if errors.Is(err, updater.ErrDisabled) {
		a.msg.Warning("Updates are disabled in configuration.")
		a.msg.Info("To enable, edit %s and set update_config.enabled to true", cfg.Path())
		return nil
	}
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, updater.UpdateTimeout)
	defer cancel()

	a.msg.Info("Checking for updates...")
	release, err := upd.CheckForUpdate(ctx)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	if release == nil {
		updater.ShowAlreadyUpToDate(a.stderr, upd.CurrentVersion())
		return nil
	}

	if checkOnly {
		updater.ShowUpdateAvailable(a.stdout, upd.CurrentVersion(), release.Version())
		return nil
	}

	action, err := upd.PromptForUpdate(release)
	if err != nil {
		a.msg.Warning("Update cancelled.")
		return nil
	}

	switch action {
	case updater.ActionSkip:
		a.msg.Info("Skipped version %s", release.Version())
		return nil
	case updater.ActionLater:
		a.msg.Info("Update postponed")
		return nil
	}

	a.msg.Info("Downloading jvmfind %s...", release.Version())
	if err := upd.PerformUpdate(ctx, release); err != nil {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("%w; download manually from %s", err, release.URL)}
	}

	updater.ShowUpdateSuccess(a.stderr, release.Version())
	return nil
}
