package main

import (
	"errors"
	"fmt"
	"strings"

	"jvmfind/internal/config"
	"jvmfind/internal/java"
	"jvmfind/internal/theme"

	"github.com/spf13/cobra"
)

// manageLocations runs the register, remove or display operation. None of them scan.
func (a *app) manageLocations(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	switch {
	case flags.Changed("register-location"):
		return a.registerLocation(cfg, a.opts.register)
	case flags.Changed("remove-location"):
		return a.removeLocation(cfg, a.opts.remove)
	default:
		a.displayLocations(cfg)
		return nil
	}
}

func (a *app) registerLocation(cfg *config.Config, path string) error {
	if strings.TrimSpace(path) == "" {
		return &ExitError{Code: ExitUsage, Err: errors.New("location must not be empty")}
	}

	if !cfg.AddLocation(path) {
		a.msg.Info("%s is already registered", path)
		return nil
	}
	added := cfg.Locations[len(cfg.Locations)-1]

	if err := cfg.Save(); err != nil {
		return &ExitError{Code: ExitIOErr, Err: err}
	}

	if !java.IsValidSearchPath(added) {
		a.msg.Warning("%s is not an existing directory; it will be searched once it exists", added)
	}
	a.msg.Success("Registered %s", added)
	return nil
}

func (a *app) removeLocation(cfg *config.Config, path string) error {
	if strings.TrimSpace(path) == "" {
		return &ExitError{Code: ExitUsage, Err: errors.New("location must not be empty")}
	}

	if !cfg.RemoveLocation(path) {
		a.msg.Warning("%s is not a registered location", path)
		return nil
	}

	if err := cfg.Save(); err != nil {
		return &ExitError{Code: ExitIOErr, Err: err}
	}

	a.msg.Success("Removed %s", path)
	return nil
}

// displayLocations prints the registered locations one per line. On a terminal the
// default roots are shown as well, under headings.
func (a *app) displayLocations(cfg *config.Config) {
	if !a.isTerminal(a.stdout) {
		for _, loc := range cfg.Locations {
			fmt.Fprintln(a.stdout, loc)
		}
		return
	}

	fmt.Fprintln(a.stdout, theme.Title.Render("Registered locations"))
	if len(cfg.Locations) == 0 {
		fmt.Fprintln(a.stdout, theme.Faint.Render("  none, add one with 'jvmfind -r <dir>'"))
	}
	for _, loc := range cfg.Locations {
		fmt.Fprintf(a.stdout, "  %s%s\n", theme.PathStyle.Render(loc), missingTag(loc))
	}

	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, theme.Title.Render("Default locations"))
	for _, root := range java.DefaultRoots() {
		fmt.Fprintf(a.stdout, "  %s%s\n", theme.Faint.Render(root), missingTag(root))
	}
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, theme.Faint.Render("Store: "+cfg.Path()))
}

func missingTag(path string) string {
	if java.IsValidSearchPath(path) {
		return ""
	}
	return " " + theme.WarningStyle.Render("(missing)")
}
