package output

import "io"

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithStyles configures the printer to use the provided StyleProvider.
// A nil or unavailable provider leaves the printer in plain mode.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithWriter configures the printer to write to writer instead of os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithPalette sets the help palette handed to renderers.
func WithPalette(palette Palette) Option {
	return func(p *Printer) {
		p.palette = palette
	}
}

// WithColorMode resolves both the palette and the style provider for the
// printer's writer. Apply it after WithWriter.
func WithColorMode(mode ColorMode) Option {
	return func(p *Printer) {
		p.palette = PaletteFor(mode, p.writer)
		if p.palette.IsPlain() {
			p.styleProvider = nil
			return
		}
		p.styleProvider = NewThemeStyleProvider()
	}
}

// PlainText forces plain output, ignoring any StyleProvider or palette.
func PlainText() Option {
	return func(p *Printer) {
		p.forcePlain = true
	}
}

// TestMode configures the printer for deterministic output in tests.
func TestMode() Option {
	return func(p *Printer) {
		p.forcePlain = true
		p.palette = PlainPalette()
	}
}

// Silent configures the printer to discard all output.
func Silent() Option {
	return func(p *Printer) {
		p.silent = true
	}
}

// WithPrefix adds a prefix to every styled write.
func WithPrefix(prefix string) Option {
	return func(p *Printer) {
		p.prefix = prefix
	}
}
