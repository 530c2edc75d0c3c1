package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer is the serialized output handle shared by the rpnx front-ends.
// Every method writes a complete unit under one lock, so help blocks issued
// from different goroutines never interleave.
type Printer struct {
	styleProvider StyleProvider
	palette       Palette
	writer        io.Writer
	forcePlain    bool
	silent        bool
	prefix        string

	mu sync.Mutex
}

// NewPrinter creates a Printer with the given options.
// By default it writes plain text to os.Stdout.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Write implements io.Writer. The whole buffer is written under the printer
// lock, which makes it suitable as the destination of a help renderer.
func (p *Printer) Write(b []byte) (int, error) {
	if p.silent {
		return len(b), nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writer.Write(b)
}

// Palette returns the help palette configured for this printer.
func (p *Printer) Palette() Palette {
	if p.forcePlain {
		return PlainPalette()
	}
	return p.palette
}

// Print outputs text without semantic styling.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text without semantic styling.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text followed by a newline.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info outputs informational text.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Warning outputs warning text.
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error outputs error text.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Heading outputs a section heading.
func (p *Printer) Heading(text string) {
	p.output(SemanticHeading, text, true)
}

// Style renders text with the style for semantic without writing it.
func (p *Printer) Style(semantic SemanticType, text string) string {
	return p.styleFor(semantic).Render(text)
}

// Lines writes several already formatted lines as one block.
func (p *Printer) Lines(lines []string) {
	if len(lines) == 0 {
		return
	}
	p.write(strings.Join(lines, "\n") + "\n")
}

// output is the core method that styles and writes one piece of text.
func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	result := p.styleFor(semantic).Render(text)
	if addNewline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	p.write(result)
}

func (p *Printer) styleFor(semantic SemanticType) TextStyle {
	if !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable() {
		return p.styleProvider.GetStyle(semantic)
	}
	return NewPlainStyleProvider().GetStyle(semantic)
}

func (p *Printer) write(text string) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.prefix != "" {
		text = p.prefix + text
	}
	_, _ = io.WriteString(p.writer, text) // Write errors surface through Write, not the styled helpers
}

// SetWriter changes the output writer.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// SetStyleProvider changes the style provider. Pass nil to disable styling.
func (p *Printer) SetStyleProvider(provider StyleProvider) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.styleProvider = provider
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

// String returns a string representation for debugging.
func (p *Printer) String() string {
	hasStyles := "no"
	if p.IsStylable() {
		hasStyles = "yes"
	}
	return fmt.Sprintf("Printer{styles: %s, palette: %t, writer: %T}", hasStyles, !p.Palette().IsPlain(), p.writer)
}
