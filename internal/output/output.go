package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// SupportsColor reports whether w is a terminal that accepts ANSI colors.
// NO_COLOR and CLICOLOR_FORCE are honored through termenv.
func SupportsColor(w io.Writer) bool {
	if w == nil {
		return false
	}
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

// IsTerminal reports whether stdout is attached to a character device.
func IsTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}

// PaletteFor resolves the help palette for a destination writer.
func PaletteFor(mode ColorMode, w io.Writer) Palette {
	switch mode {
	case ColorAlways:
		return ANSIPalette()
	case ColorNever:
		return PlainPalette()
	default:
		if SupportsColor(w) {
			return ANSIPalette()
		}
		return PlainPalette()
	}
}
