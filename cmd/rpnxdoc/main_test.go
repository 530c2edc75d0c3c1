package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"rpnx/internal/helpdb"
	"rpnx/internal/output"
)

// run executes rpnxdoc with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("RPNX_CONFIG_DIR", t.TempDir())
	t.Setenv("RPNX_COLOR", "")
	t.Setenv("RPNX_LOG_LEVEL", "")

	stdout, stderr := output.NewCaptureBuffer(), output.NewCaptureBuffer()
	root := newRootCmd(stdout, stderr)
	root.SetArgs(append([]string{"--color=never"}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_RendersTokens(t *testing.T) {
	stdout, stderr, err := run(t, "pi", "sqrt")
	require.NoError(t, err)

	assert.Equal(t,
		"pi: Push the constant pi\nsyntax: pi\n\n"+
			"sqrt: Compute square root\nsyntax: x sqrt\n  x: number or complex\nexample: 9 sqrt\n\n",
		stdout)
	assert.Empty(t, stderr)
}

func TestRoot_UnknownToken(t *testing.T) {
	stdout, stderr, err := run(t, "pi", "frobnicate")

	assert.ErrorIs(t, err, errUnknownTokens)
	assert.Contains(t, stdout, "pi: Push the constant pi")
	assert.Contains(t, stderr, "Unknown command: frobnicate")
}

func TestRoot_NoArgsPrintsUsage(t *testing.T) {
	stdout, _, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
}

func TestShow_AliasRecord(t *testing.T) {
	stdout, _, err := run(t, "show", "pop")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "pop: "))
	assert.Contains(t, stdout, "(alias for drop)")
}

func TestShow_RequiresToken(t *testing.T) {
	_, _, err := run(t, "show")
	assert.Error(t, err)
}

func TestList_Category(t *testing.T) {
	stdout, _, err := run(t, "list", "--category", "logarithm")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, helpdb.CategoryLogarithm.Title()+"\n"))
	assert.Contains(t, stdout, "ln")

	_, _, err = run(t, "list", "--category", "astrology")
	assert.Error(t, err)
}

func TestExport_JSONToStdout(t *testing.T) {
	stdout, _, err := run(t, "export", "--format", "json")
	require.NoError(t, err)

	var doc helpdb.Document
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Len(t, doc.Commands, helpdb.Default().Len())
}

func TestExport_YAMLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	stdout, _, err := run(t, "export", "-f", "yml", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc helpdb.Document
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Len(t, doc.Commands, helpdb.Default().Len())
}

func TestExport_MarkdownNotTerminal(t *testing.T) {
	stdout, _, err := run(t, "export", "--format", "markdown")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "# rpnx command reference"))
}

func TestExport_BadFormat(t *testing.T) {
	_, _, err := run(t, "export", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestBadColorFlag(t *testing.T) {
	_, _, err := run(t, "--color=rainbow", "pi")
	assert.ErrorContains(t, err, "invalid color mode")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "rpnxdoc v"))
}
