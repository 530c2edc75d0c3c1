package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"rpnx/internal/browse"
	"rpnx/internal/config"
	"rpnx/internal/helpdb"
	"rpnx/internal/logger"
	"rpnx/internal/output"
	"rpnx/internal/shell"
	"rpnx/internal/version"
)

func (a *app) newShowCmd() *cobra.Command {
	var copyText bool

	cmd := &cobra.Command{
		Use:   "show <token...>",
		Short: "Show the help entry of one or more tokens",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.showTokens(args, copyText)
		},
	}
	cmd.Flags().BoolVar(&copyText, "copy", false, "Also copy the plain-text help to the clipboard")
	return cmd
}

// showTokens renders the help of every known token and reports the unknown
// ones on stderr with suggestions.
func (a *app) showTokens(tokens []string, copyText bool) error {
	out := a.printer(a.stdout)
	errOut := a.printer(a.stderr)
	renderer := helpdb.NewRenderer(out.Palette())

	var copied strings.Builder
	unknown := 0
	for _, token := range tokens {
		rec, ok := a.reg.Lookup(token)
		logger.HelpLookup(token, ok)
		if !ok {
			unknown++
			msg := "Unknown command: " + token
			if suggestions := shell.Suggest(a.reg, token, 3); len(suggestions) > 0 {
				msg += " (did you mean " + strings.Join(suggestions, ", ") + "?)"
			}
			errOut.Error(msg)
			continue
		}

		text := renderer.Format(rec)
		if _, err := out.Write([]byte(text)); err != nil {
			return fmt.Errorf("failed to write help for %s: %w", token, err)
		}
		copied.WriteString(ansi.Strip(text))
	}

	if copyText && copied.Len() > 0 {
		if err := copyToClipboard(a.stdout, copied.String()); err != nil {
			return err
		}
		logger.Info("Copied help to clipboard", "bytes", copied.Len())
	}

	if unknown > 0 {
		return errUnknownTokens
	}
	return nil
}

func (a *app) newListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List commands grouped by family",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return shell.PrintListing(a.printer(a.stdout), a.reg, helpdb.Category(category))
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list one family (e.g. trigonometry)")
	return cmd
}

func (a *app) newExportCmd() *cobra.Command {
	var formatName, outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON, YAML, TOML or Markdown",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			format, err := helpdb.ParseFormat(formatName)
			if err != nil {
				return err
			}

			if outputPath != "" {
				return a.exportFile(format, outputPath)
			}

			// Markdown to a terminal is rendered for reading.
			if format == helpdb.FormatMarkdown && a.cfg.Color != output.ColorNever && output.SupportsColor(a.stdout) {
				md := output.NewMarkdownRenderer(a.cfg.Color, a.cfg.Width)
				_, err := fmt.Fprint(a.stdout, md.Render(a.reg.Markdown()))
				return err
			}
			return a.reg.Export(a.stdout, format)
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "json", "Output format (json|yaml|toml|markdown)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func (a *app) exportFile(format helpdb.Format, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := a.reg.Export(file, format); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	logger.Info("Catalog exported", "format", format, "path", path, "entries", a.reg.Len())
	return nil
}

func (a *app) newBrowseCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "browse [token]",
		Short: "Browse the catalog in a full-screen view",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts := browse.Options{Category: helpdb.Category(category)}
			if len(args) == 1 {
				opts.Token = args[0]
			}
			return browse.Run(a.reg, output.PaletteFor(a.cfg.Color, os.Stdout), opts)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only browse one family")
	return cmd
}

func (a *app) newShellCmd() *cobra.Command {
	var prompt string
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive help prompt",
		Long: `Start a help prompt that accepts the calculator's help forms:
  sqrt            show help for sqrt
  'sqrt' help     same, also 'sqrt' h and 'sqrt' ?
  list [family]   list commands
  quit            leave the prompt`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts := shell.Options{Prompt: prompt}
			if !noHistory {
				opts.HistoryFile = historyFile()
			}

			fmt.Fprintf(a.stdout, "%s - type a command token, 'help' or 'quit'\n", version.GetFormattedVersion())
			return shell.New(a.reg, a.printer(a.stdout)).Run(opts)
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "help> ", "Prompt string")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not read or write the history file")
	return cmd
}

// historyFile returns the prompt history path inside the config dir, or ""
// when the directory cannot be created.
func historyFile() string {
	dir := config.DefaultPaths().ConfigDir
	if dir == "" {
		return ""
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("History disabled", "error", err)
		return ""
	}
	return filepath.Join(dir, "history")
}

func (a *app) newVersionCmd() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			if detailed {
				fmt.Fprintln(a.stdout, version.GetDetailedVersion())
				return
			}
			fmt.Fprintln(a.stdout, version.GetFormattedVersion())
		},
	}
	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "Show build details")
	return cmd
}
