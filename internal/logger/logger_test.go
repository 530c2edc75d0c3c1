package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"fatal":   log.FatalLevel,
		"":        log.WarnLevel,
		"verbose": log.WarnLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestConfigure_FlagBeatsEnv(t *testing.T) {
	t.Setenv("RPNX_LOG_LEVEL", "error")

	require.NoError(t, Configure("debug", ""))
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())

	require.NoError(t, Configure("", ""))
	assert.Equal(t, log.ErrorLevel, Logger.GetLevel())
}

func TestConfigure_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpnx.log")

	require.NoError(t, Configure("info", path))
	Info("hello from test", "token", "sqrt")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "sqrt")

	require.NoError(t, Configure("warn", ""))
}

func TestConfigure_BadLogFile(t *testing.T) {
	err := Configure("info", filepath.Join(t.TempDir(), "missing", "dir", "rpnx.log"))
	assert.Error(t, err)
}

func TestNewStyledLogger_InheritsLevel(t *testing.T) {
	require.NoError(t, Configure("debug", ""))
	defer func() { _ = Configure("warn", "") }()

	l := NewStyledLogger("shell")
	assert.Equal(t, log.DebugLevel, l.GetLevel())
	assert.Equal(t, "shell ", l.GetPrefix())
}
