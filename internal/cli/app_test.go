package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewApp_FlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"
format = "json"

[navigation]
pan_threshold = 25
`)

	app, err := NewApp(Options{ConfigFile: path, LogLevel: "error"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Equal(t, 25.0, app.Config.Navigation.PanThreshold)
	assert.Equal(t, zerolog.ErrorLevel, app.Logger.GetLevel())
	assert.Empty(t, app.LogFile)
	assert.Equal(t, path, app.Configs.ConfigFileUsed())
	assert.NotNil(t, app.Context())
}

func TestNewApp_LogToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "demo.log")
	path := writeConfig(t, "[logging]\nfile = \""+filepath.ToSlash(logPath)+"\"\nformat = \"json\"\n")

	app, err := NewApp(Options{ConfigFile: path, LogToFile: true, LogLevel: "info"})
	require.NoError(t, err)

	app.Logger.Info().Msg("hello file")
	require.NoError(t, app.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

func TestNewApp_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "[navigation]\npan_threshold = -3\n")

	_, err := NewApp(Options{ConfigFile: path})
	assert.Error(t, err)
}
