// Package cli provides the command-line interface for readfence.
package cli

import (
	"io"
	"os"

	"github.com/safedep/dry/log"
	"github.com/safedep/readfence/agent"
	"github.com/safedep/readfence/agent/cursor"
	"github.com/safedep/readfence/config"
	"github.com/safedep/readfence/core/gate"
	"github.com/safedep/readfence/internal/version"
	"github.com/safedep/readfence/tui"
	"github.com/spf13/cobra"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Gate      *gate.Gate
	Registry  *agent.Registry
	Presenter tui.Presenter
	Paths     *config.Paths
}

// NewApp creates a new App with the given configuration.
// out receives presenter output; pass the command's stdout.
func NewApp(cfg *config.Config, out io.Writer) *App {
	paths := config.ResolvePaths()

	registry := agent.NewRegistry()
	cursor.Register(registry)

	g := gate.New(gate.Options{
		AdditionalNames: cfg.Gate.AdditionalNames,
		IgnoredNames:    cfg.Gate.IgnoredNames,
		DenyMessage:     cfg.Gate.DenyMessage,
	})

	presenter := tui.NewPresenter(getFormat(globalFlags.Format), tui.PresenterOptions{
		Writer:    out,
		UseColors: shouldUseColors(cfg, out),
	})

	return &App{
		Config:    cfg,
		Gate:      g,
		Registry:  registry,
		Presenter: presenter,
		Paths:     paths,
	}
}

// GlobalFlags holds the global command flags.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	NoColor    bool
	Format     string
}

var globalFlags GlobalFlags

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "readfence",
		Short: "Sensitive file read gate for AI coding agents",
		Long: `Readfence gates file reads made by AI coding agents.

It hooks into Cursor's beforeReadFile hook and denies reads of files
whose name is on a fixed sensitive-filename denylist (.env, id_rsa,
credentials.json, ...). Matching is by exact filename, and any internal
failure resolves to allow: the gate never blocks a legitimate read
because of its own malfunction.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Handle NO_COLOR environment variable
			if os.Getenv("NO_COLOR") != "" {
				globalFlags.NoColor = true
			}
			if os.Getenv("READFENCE_NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			setupInternalLogger()

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "increase output verbosity")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Format, "format", "table", "output format: table, json")

	// Add subcommands
	rootCmd.AddCommand(
		NewInstallCmd(),
		NewUninstallCmd(),
		NewStatusCmd(),
		NewDoctorCmd(),
		NewCheckCmd(),
		NewRulesCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
		NewHookCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setupInternalLogger sets up the DRY logger.
func setupInternalLogger() {
	// Stdout carries hook responses and presenter output, never log lines.
	_ = os.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "true")

	log.Init("readfence", "cli")
}

// loadApp loads the application with configuration.
func loadApp(cmd *cobra.Command) (*App, error) {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		return nil, ErrConfig("failed to load configuration", err)
	}

	if globalFlags.NoColor {
		cfg.Display.Colors = config.ColorNever
	}

	return NewApp(cfg, cmd.OutOrStdout()), nil
}

// loadHookApp loads the application for the hook path. Unlike loadApp it
// cannot fail: a broken config file falls back to defaults so the gate
// still answers, per the fail-open contract.
func loadHookApp(cmd *cobra.Command) *App {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		log.Errorf("falling back to default config: %v", err)
		cfg = config.Default()
	}

	return NewApp(cfg, cmd.OutOrStdout())
}

// shouldUseColors resolves the configured color mode against the actual
// output writer. Auto mode only colors output going to a terminal.
func shouldUseColors(cfg *config.Config, out io.Writer) bool {
	if globalFlags.NoColor {
		return false
	}

	switch cfg.Display.Colors {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return tui.IsWriterTerminal(out)
	}
}

// getFormat returns the output format from flags or default.
func getFormat(format string) tui.Format {
	switch format {
	case "json":
		return tui.FormatJSON
	default:
		return tui.FormatTable
	}
}
