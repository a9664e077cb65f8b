package main

import (
	"errors"
	"io"
	"os"

	"jvmfind/internal/config"
	"jvmfind/internal/env"
	"jvmfind/internal/java"
	"jvmfind/internal/logging"
	"jvmfind/internal/theme"
	"jvmfind/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// options holds the parsed command-line flags
type options struct {
	arch        string
	name        string
	version     string
	detailed    bool
	fail        bool
	interactive bool

	register string
	remove   string
	display  bool

	configPath string
	debug      bool
	noColor    bool
}

// app is one invocation of jvmfind. Its collaborators are fields so tests can replace them.
type app struct {
	stdout io.Writer
	stderr io.Writer
	opts   options

	logger *log.Logger
	msg    *ui.Printer

	host        java.Arch
	newDetector func(customRoots []string, logger *log.Logger) *java.Detector
	isTerminal  func(f any) bool
	javaHome    func() string
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:      stdout,
		stderr:      stderr,
		logger:      logging.Discard(),
		msg:         ui.New(stderr),
		host:        java.HostArch(),
		newDetector: java.NewDetector,
		isTerminal:  isTerminal,
		javaHome:    env.JavaHome,
	}
}

// Execute runs jvmfind with args and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	return newApp(stdout, stderr).execute(args)
}

func (a *app) execute(args []string) int {
	cmd := a.newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.Execute()
	code := exitCode(err)
	if err != nil {
		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Err != nil {
			a.msg.Error("%v", err)
		}
		if code == ExitUsage {
			a.msg.Info("run 'jvmfind --help' for usage")
		}
	}
	return code
}

func (a *app) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jvmfind",
		Short: "Find installed Java virtual machines",
		Long: theme.Title.Render("jvmfind") + theme.Subtitle.Render(" - find installed Java virtual machines") + `

Scans the platform default locations and any registered custom locations for
JVM installations, filters them by name, version and architecture, and prints
the path of the best match.

` + theme.Subtitle.Render("Version filters:") + `
  -v 17        any 17.x release (legacy 1.8 and 8 are equivalent)
  -v 11.0.2    releases starting with 11.0.2
  -v 11+       11 or newer`,
		Example: `  jvmfind                          Path of the newest JVM
  jvmfind -v 17 -a arm64           Newest Java 17 for arm64
  jvmfind -d -n temurin            List every Temurin JVM
  export JAVA_HOME=$(jvmfind -f -v 21+)
  jvmfind -r /opt/jvms             Also search /opt/jvms`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setup()
		},
		RunE: a.run,
	}

	f := cmd.Flags()
	f.StringVarP(&a.opts.arch, "arch", "a", "", "only JVMs for this architecture (x86_64, amd64, aarch64, arm64, ...)")
	f.BoolVarP(&a.opts.detailed, "detailed", "d", false, "print every match with its version, architecture and name")
	f.BoolVarP(&a.opts.fail, "fail", "f", false, "exit with status 78 when no JVM matches")
	f.StringVarP(&a.opts.name, "name", "n", "", "only JVMs whose name contains this text (case-insensitive)")
	f.StringVarP(&a.opts.version, "version", "v", "", "only JVMs matching this version prefix, or at least this version with a trailing +")
	f.BoolVarP(&a.opts.interactive, "interactive", "i", false, "pick among the matches with a prompt when run in a terminal")
	f.StringVarP(&a.opts.register, "register-location", "r", "", "add a directory to search for JVMs")
	f.StringVarP(&a.opts.remove, "remove-location", "x", "", "remove a previously registered directory")
	f.BoolVarP(&a.opts.display, "display-locations", "l", false, "print the registered search directories")
	cmd.MarkFlagsMutuallyExclusive("register-location", "remove-location", "display-locations")

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.opts.configPath, "config", "", "location store file (default "+config.DefaultPath()+")")
	pf.BoolVar(&a.opts.debug, "debug", false, "log discovery diagnostics to stderr")
	pf.BoolVar(&a.opts.noColor, "no-color", false, "disable colored output")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})

	cmd.AddCommand(a.newVersionCmd())
	cmd.AddCommand(a.newUpdateCmd())

	return cmd
}

// setup applies the global flags before any command runs
func (a *app) setup() {
	if a.opts.noColor || os.Getenv("NO_COLOR") != "" {
		ui.DisableColor()
		theme.DisableColor()
	}
	a.logger = logging.New(a.stderr, a.opts.debug)
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.opts.configPath != "" {
		return config.LoadFrom(a.opts.configPath)
	}
	return config.Load()
}

// run is the root command: either a location management operation or a scan
func (a *app) run(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	management := flags.Changed("register-location") || flags.Changed("remove-location") || flags.Changed("display-locations")

	cfg, cfgErr := a.loadConfig()
	if management {
		if cfgErr != nil {
			return &ExitError{Code: ExitIOErr, Err: cfgErr}
		}
		return a.manageLocations(cmd, cfg)
	}

	filter, err := java.NewFilter(a.opts.name, a.opts.arch, a.opts.version)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	var custom []string
	if cfgErr != nil {
		a.logger.Warn("ignoring registered locations", "err", cfgErr)
	} else {
		custom = cfg.Locations
	}

	detector := a.newDetector(custom, a.logger)
	var jvms []java.JVM
	if a.opts.interactive && a.isTerminal(a.stderr) {
		jvms = detector.FindAllWithSpinner(a.stderr)
	} else {
		jvms = detector.FindAll()
	}

	selected := java.Select(jvms, filter, a.host)
	a.logger.Debug("discovery finished", "found", len(jvms), "matched", len(selected))

	if len(selected) == 0 {
		if a.opts.fail {
			return &ExitError{Code: ExitNoJVM, Err: errNoJVM}
		}
		return nil
	}

	return a.report(selected)
}

// isTerminal reports whether f is a terminal. Anything that is not an *os.File is not.
func isTerminal(f any) bool {
	file, ok := f.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
