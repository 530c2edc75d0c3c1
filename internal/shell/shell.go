// Package shell provides the interactive help prompt for rpnx commands.
// It accepts the same help forms as the calculator REPL ("sqrt",
// "'sqrt' help", "'sqrt' h", "'sqrt' ?") and renders catalog entries.
package shell

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"rpnx/internal/helpdb"
	"rpnx/internal/logger"
	"rpnx/internal/output"
)

// helpWords are the tokens that ask for help in the calculator language.
var helpWords = map[string]bool{"help": true, "h": true, "?": true}

// quitWords leave the prompt.
var quitWords = map[string]bool{"quit": true, "q": true, "exit": true}

// Shell dispatches help requests against a registry.
type Shell struct {
	registry *helpdb.Registry
	renderer *helpdb.Renderer
	printer  *output.Printer
	log      *log.Logger
}

// New creates a shell that renders through printer using the printer's palette.
func New(reg *helpdb.Registry, printer *output.Printer) *Shell {
	return &Shell{
		registry: reg,
		renderer: helpdb.NewRenderer(printer.Palette()),
		printer:  printer,
		log:      logger.NewStyledLogger("shell"),
	}
}

// Execute handles one input line. It returns true when the user asked to quit.
func (s *Shell) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false
	}

	if len(fields) == 1 {
		switch {
		case quitWords[fields[0]]:
			return true
		case helpWords[fields[0]]:
			s.printUsage()
			return false
		case fields[0] == "list":
			_ = PrintListing(s.printer, s.registry, "")
			return false
		}
	}

	// 'token' help, 'token' h, 'token' ?
	if len(fields) == 2 && helpWords[fields[1]] {
		if token, ok := unquote(fields[0]); ok {
			s.Show(token)
			return false
		}
	}

	// help token, list category
	if len(fields) == 2 && helpWords[fields[0]] {
		s.Show(strings.Trim(fields[1], "'"))
		return false
	}
	if len(fields) == 2 && fields[0] == "list" {
		if err := PrintListing(s.printer, s.registry, helpdb.Category(fields[1])); err != nil {
			s.printer.Error(err.Error())
		}
		return false
	}

	for _, token := range fields {
		s.Show(token)
	}
	return false
}

// Show renders the help entry for token, or an unknown-command message with
// close matches.
func (s *Shell) Show(token string) bool {
	rec, ok := s.registry.Lookup(token)
	logger.HelpLookup(token, ok)
	if !ok {
		msg := "Unknown command: " + token
		if suggestions := Suggest(s.registry, token, 3); len(suggestions) > 0 {
			msg += " (did you mean " + strings.Join(suggestions, ", ") + "?)"
		}
		s.printer.Error(msg)
		return false
	}

	if err := s.renderer.Render(s.printer, rec); err != nil {
		s.log.Error("Render failed", "token", token, "error", err)
		return false
	}
	return true
}

func (s *Shell) printUsage() {
	s.printer.Lines([]string{
		"Type a command token to see its help, e.g. sqrt or 'sqrt' help.",
		"  list [category]  list commands by family",
		"  quit             leave the help prompt",
		"",
	})
	_ = PrintListing(s.printer, s.registry, "")
}

// unquote strips the quotes of a quoted symbol such as 'sqrt'.
func unquote(s string) (string, bool) {
	if len(s) >= 3 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		return s[1 : len(s)-1], true
	}
	return "", false
}

// Options configures the interactive prompt.
type Options struct {
	Prompt      string
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
}

// Run reads lines until EOF, interrupt on an empty line, or a quit word.
func (s *Shell) Run(opts Options) error {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "help> "
	}

	var painter readline.Painter
	if !s.printer.Palette().IsPlain() {
		painter = NewTokenHighlighter(s.registry, s.printer.Palette())
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     opts.HistoryFile,
		AutoComplete:    NewCompleter(s.registry),
		Painter:         painter,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           opts.Stdin,
		Stdout:          opts.Stdout,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	s.log.Debug("Help prompt started", "history", opts.HistoryFile)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if s.Execute(line) {
			return nil
		}
	}
}
