// Package main provides rpnxdoc, the command-line front-end of the rpnx help
// catalog. It renders help for calculator tokens, lists and exports the
// catalog, and hosts the interactive help prompt and browser.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rpnx/internal/config"
	"rpnx/internal/helpdb"
	"rpnx/internal/logger"
	"rpnx/internal/output"
)

// errUnknownTokens marks a run where at least one token had no help entry.
// The messages were already printed, so main only sets the exit status.
var errUnknownTokens = errors.New("unknown command token")

// app carries the state shared by every subcommand.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	reg *helpdb.Registry

	stdout io.Writer
	stderr io.Writer
}

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errUnknownTokens) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// newRootCmd builds the command tree writing to stdout and stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      config.New(),
		reg:    helpdb.Default(),
		stdout: stdout,
		stderr: stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "rpnxdoc [token...]",
		Short: "Help catalog for the rpnx calculator",
		Long: `rpnxdoc shows the built-in documentation of rpnx calculator commands.
With token arguments it prints the help entry of each token, exactly as the
calculator's help command does.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.showTokens(args, false)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyColor, "auto", "Color output (auto|always|never)")
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.Int(config.KeyWidth, 80, "Wrap width for rendered Markdown")

	for _, key := range []string{config.KeyColor, config.KeyLogLevel, config.KeyLogFile, config.KeyWidth} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", key, err))
		}
	}

	rootCmd.AddCommand(
		a.newShowCmd(),
		a.newListCmd(),
		a.newExportCmd(),
		a.newBrowseCmd(),
		a.newShellCmd(),
		a.newVersionCmd(),
	)

	return rootCmd
}

// initConfig resolves settings and configures logging and color output
// before any command runs.
func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, config.DefaultPaths())
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	switch cfg.Color {
	case output.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	case output.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	a.cfg = cfg
	logger.Debug("Configuration loaded", "color", cfg.Color, "sources", cfg.Sources, "entries", a.reg.Len())
	return nil
}

// printer returns a printer for w honoring the configured color mode.
func (a *app) printer(w io.Writer) *output.Printer {
	return output.NewPrinter(output.WithWriter(w), output.WithColorMode(a.cfg.Color))
}
