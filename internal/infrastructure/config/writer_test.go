package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Navigation.PanThreshold = 33
	cfg.Demo.Scenes = []string{"menu.toml"}
	require.NoError(t, WriteConfigOrdered(cfg, path))

	m := newTestManager(t, WithConfigFile(path))
	require.NoError(t, m.Load())

	got := m.Get()
	assert.InDelta(t, 33, got.Navigation.PanThreshold, 1e-9)
	assert.Equal(t, []string{"menu.toml"}, got.Demo.Scenes)
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "c.toml")))
}

func TestEncodeTOML(t *testing.T) {
	out, err := EncodeTOML(DefaultConfig())
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "[demo]"), strings.Index(out, "[logging]"))
	assert.Contains(t, out, "pan_threshold = 60.0")
	assert.Contains(t, out, "play_pause_action = 'none'")
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[remote]
swipe_steps = 4

[logging]
level = 'info'

[navigation]
pan_threshold = 60.0

[demo]
watch = false
`

	result := sortTOMLSections(input)

	var sections []string
	for _, line := range strings.Split(result, "\n") {
		if strings.HasPrefix(line, "[") {
			sections = append(sections, line)
		}
	}

	assert.Equal(t, []string{"[demo]", "[logging]", "[navigation]", "[remote]"}, sections)
	assert.True(t, strings.HasPrefix(result, "title = 'x'\n\n[demo]"))
	assert.True(t, strings.HasSuffix(result, "swipe_steps = 4\n"))
}
