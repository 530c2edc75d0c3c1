//go:build !linux

package main

import (
	"fmt"
	"io"

	"golang.design/x/clipboard"
)

// copyToClipboard puts text on the system clipboard.
func copyToClipboard(_ io.Writer, text string) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
