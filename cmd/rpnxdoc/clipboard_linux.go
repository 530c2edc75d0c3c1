//go:build linux

package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// copyToClipboard asks the terminal behind w to set the clipboard with an
// OSC 52 sequence. The native clipboard needs X11 headers at build time.
func copyToClipboard(w io.Writer, text string) error {
	out := termenv.NewOutput(w)
	if out.TTY() == nil {
		return fmt.Errorf("clipboard unavailable: output is not a terminal")
	}
	out.Copy(text)
	return nil
}
