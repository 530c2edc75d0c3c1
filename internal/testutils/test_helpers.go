// Package testutils provides shared helpers for rpnx package tests.
package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertionHelpers provides custom assertion helpers for rendered output.
type AssertionHelpers struct {
	t *testing.T
}

// NewAssertionHelpers creates new assertion helpers.
func NewAssertionHelpers(t *testing.T) *AssertionHelpers {
	return &AssertionHelpers{t: t}
}

// AssertNoANSI checks that text carries no terminal escape sequences.
func (h *AssertionHelpers) AssertNoANSI(text string) {
	h.t.Helper()
	assert.Equal(h.t, text, ansi.Strip(text), "output should not contain ANSI escapes")
}

// AssertLines checks the newline-separated lines of text, ignoring styling.
func (h *AssertionHelpers) AssertLines(text string, expected ...string) {
	h.t.Helper()
	assert.Equal(h.t, expected, SplitLines(StripANSI(text)))
}

// StripANSI removes terminal escape sequences from text.
func StripANSI(text string) string {
	return ansi.Strip(text)
}

// SplitLines splits text on newlines, keeping empty lines but dropping the
// empty string after a final newline.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// FileHelpers provides file-related test helpers.
type FileHelpers struct{}

// NewFileHelpers creates new file helpers.
func NewFileHelpers() *FileHelpers {
	return &FileHelpers{}
}

// CreateTempFile creates a temporary file with content and returns its path.
func (f *FileHelpers) CreateTempFile(t *testing.T, filename, content string) string {
	t.Helper()
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, filename)

	err := os.WriteFile(filePath, []byte(content), 0644)
	require.NoError(t, err)

	return filePath
}

// CreateTempDir creates a temporary directory with the given files.
func (f *FileHelpers) CreateTempDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for filename, content := range files {
		filePath := filepath.Join(tempDir, filename)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	return tempDir
}
