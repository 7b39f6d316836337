package styles_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tvfocus/internal/cli/styles"
	"github.com/bnema/tvfocus/internal/domain/entity"
)

func TestConfigSchemaRenderer_SectionOrder(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())

	out := r.Render([]entity.ConfigKeyInfo{
		{Key: "demo.watch", Type: "bool", Default: "false", Section: "Demo"},
		{Key: "extra.key", Type: "string", Section: "Extra"},
		{Key: "logging.level", Type: "string", Default: "info", Values: []string{"info", "debug"}, Section: "Logging"},
		{Key: "navigation.pan_threshold", Type: "float64", Default: "60", Range: ">=0", Section: "Navigation"},
	})

	logging := strings.Index(out, "Logging")
	navigation := strings.Index(out, "Navigation")
	demo := strings.Index(out, "Demo")
	extra := strings.Index(out, "Extra")
	require.True(t, logging >= 0 && navigation >= 0 && demo >= 0 && extra >= 0)
	assert.Less(t, logging, navigation)
	assert.Less(t, navigation, demo)
	assert.Less(t, demo, extra, "unknown sections come last")

	assert.Contains(t, out, "Values: info, debug")
	assert.Contains(t, out, "Range: >=0")
}

func TestConfigSchemaRenderer_Empty(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())
	assert.Contains(t, r.Render(nil), "No configuration keys found")
}

func TestConfigSchemaRenderer_ConfigFile(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())
	assert.Contains(t, r.RenderConfigFile(""), "using defaults")
	assert.Contains(t, r.RenderConfigFile("/tmp/tvfocus/config.toml"), "config.toml")
	assert.Contains(t, r.RenderWritten("/tmp/x.toml"), "wrote")
}
